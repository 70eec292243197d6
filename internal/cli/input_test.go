package cli

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsAndReturns(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("  Espresso  \n"))
	got, err := GetSimpleText(r, "Product name", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Espresso", got)
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))
	got, err := GetSimpleText(r, "x", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))
	_, err := GetSimpleText(r, "x", io.Discard)
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("42\n"))
	n, err := GetInt(r, "id", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	r = bufio.NewReader(strings.NewReader("abc\n"))
	_, err = GetInt(r, "id", io.Discard)
	assert.Error(t, err)
}

func TestGetDecimal(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("2.50\n"))
	d, err := GetDecimal(r, "price", io.Discard)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("2.5")))

	r = bufio.NewReader(strings.NewReader("oops\n"))
	_, err = GetDecimal(r, "price", io.Discard)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID([]string{"15", "x"}, "Usage: order <id>")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	_, err = parseID(nil, "Usage: order <id>")
	assert.EqualError(t, err, "Usage: order <id>")

	_, err = parseID([]string{"abc"}, "Usage: order <id>")
	assert.Error(t, err)
}
