package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEntryCursor(t *testing.T) {
	cursor := EntryCursor{
		EntryDate: time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC),
		EntryID:   "9f0c7c1e-entry",
	}

	token := EncodeEntryCursor(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeEntryCursor(token)
	require.NoError(t, err)
	assert.True(t, cursor.EntryDate.Equal(decoded.EntryDate))
	assert.True(t, cursor.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, cursor.EntryID, decoded.EntryID)
}

func TestDecodeEntryCursorError(t *testing.T) {
	_, err := DecodeEntryCursor("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeEntryCursor(base64.StdEncoding.EncodeToString([]byte("2026-05-15T00:00:00Z")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeEntryCursor(base64.StdEncoding.EncodeToString([]byte("notadate|2026-05-15T00:00:00Z|x")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "entry date parse")
}

func TestEntryCursor_Before(t *testing.T) {
	day := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	created := day.Add(time.Hour)
	c := EntryCursor{EntryDate: day, CreatedAt: created, EntryID: "m"}

	assert.True(t, c.Before(day.AddDate(0, 0, -1), created, "z"), "older entry date is on the next page")
	assert.False(t, c.Before(day.AddDate(0, 0, 1), created, "a"), "newer entry date was on this page")
	assert.True(t, c.Before(day, created.Add(-time.Second), "z"))
	assert.True(t, c.Before(day, created, "a"))
	assert.False(t, c.Before(day, created, "m"), "the cursor row itself is excluded")
}

func TestKeyToken(t *testing.T) {
	token := EncodeKeyToken("4000.10")
	key, err := DecodeKeyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "4000.10", key)

	_, err = DecodeKeyToken("%%%")
	assert.Error(t, err)
}
