package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "http://x", "-z", "ignored"}, []string{"-a"})
	assert.Equal(t, []string{"-a", "http://x"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=pos.json", "-a=addr"}, []string{"--config"})
	assert.Equal(t, []string{"--config=pos.json"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	got := FilterArgs([]string{"-a", "-d", "pos.db"}, []string{"-a", "-d"})
	assert.Equal(t, []string{"-a", "-d", "pos.db"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "x"}, nil)
	assert.Empty(t, got)
}
