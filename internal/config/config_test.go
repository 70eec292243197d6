package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3000", c.APIBaseURL)
	assert.Equal(t, "pos.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Empty(t, c.ReceiptFile)
}

func TestParseJson_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pos.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"api_base_url": "http://pos.local:8080",
		"database_path": "terminal1.db",
		"http_timeout": "30s"
	}`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"pos", "-c", file}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "http://pos.local:8080", c.APIBaseURL)
	assert.Equal(t, "terminal1.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
	assert.Empty(t, c.ReceiptFile)
}

func TestParseJson_NoFlagLeavesDefaults(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"pos"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "http://127.0.0.1:3000", c.APIBaseURL)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"pos", "-a", "http://till:3000", "-t", "5", "-r", "receipts.txt"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, "http://till:3000", c.APIBaseURL)
	assert.Equal(t, 5*time.Second, c.HTTPTimeout)
	assert.Equal(t, "receipts.txt", c.ReceiptFile)
	assert.Equal(t, "pos.db", c.DatabasePath)
}
