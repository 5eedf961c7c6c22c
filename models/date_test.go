package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", d.String())

	_, err = ParseDate("15.09.2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-09-15T00:00:00Z")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &decoded))
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.February, 27)

	assert.Equal(t, "2026-03-01", d.AddDays(2).String())
	assert.Equal(t, 2, d.DaysUntil(d.AddDays(2)))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))
}

func TestDateOfTruncatesTime(t *testing.T) {
	instant := time.Date(2026, time.September, 15, 23, 45, 1, 0, time.UTC)
	assert.Equal(t, "2026-09-15", DateOf(instant).String())
}
