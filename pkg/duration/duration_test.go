package duration_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisisthemurph/webauth/pkg/duration"
)

func TestParse_WithSingleSegment_ReturnsDuration(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Duration
	}{
		{"4w", 4 * 7 * 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{"1h", time.Hour},
		{"45m", 45 * time.Minute},
		{"90s", 90 * time.Second},
		{"250ms", 250 * time.Millisecond},
	}

	for _, tc := range testCases {
		d, err := duration.Parse(tc.input)

		require.NoError(t, err, tc.input)
		assert.True(t, d.Valid, tc.input)
		assert.Equal(t, tc.expected, d.Duration, tc.input)
	}
}

func TestParse_WithMultipleSegments_SumsSegments(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Duration
	}{
		{"1h30m", time.Hour + 30*time.Minute},
		{"1d12h", 36 * time.Hour},
		{"1m30s", 90 * time.Second},
		{"1w2d3h4m5s", 9*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second},
	}

	for _, tc := range testCases {
		d, err := duration.Parse(tc.input)

		require.NoError(t, err, tc.input)
		assert.True(t, d.Valid, tc.input)
		assert.Equal(t, tc.expected, d.Duration, tc.input)
	}
}

func TestParse_WithNoExpirySentinel_ReturnsNoExpiry(t *testing.T) {
	for _, input := range []string{"-1", "0"} {
		d, err := duration.Parse(input)

		require.NoError(t, err, input)
		assert.False(t, d.Valid, input)
	}
}

func TestParse_WithZeroUnitSegment_ReturnsZeroLengthDuration(t *testing.T) {
	// Only the bare "-1" and "0" are no-expiry sentinels; a zero with an
	// explicit unit is a real zero-length duration.
	for _, input := range []string{"0s", "0h", "0w"} {
		d, err := duration.Parse(input)

		require.NoError(t, err, input)
		assert.True(t, d.Valid, input)
		assert.Equal(t, time.Duration(0), d.Duration, input)
	}
}

func TestParse_WithInvalidInput_ReturnsError(t *testing.T) {
	invalidInputs := []string{
		"banana",
		"",
		"10",
		"1x",
		"h",
		"1.5h",
		"-2h",
		"1h banana",
		"1hbanana",
	}

	for _, input := range invalidInputs {
		_, err := duration.Parse(input)

		assert.Error(t, err, input)
		assert.ErrorIs(t, err, duration.ErrInvalidDuration, input)
	}
}

func TestParse_CalledTwice_ReturnsEqualResults(t *testing.T) {
	first, err := duration.Parse("1h30m")
	require.NoError(t, err)

	second, err := duration.Parse("1h30m")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSeconds_ReturnsWholeSeconds(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"4w", 2419200},
		{"1h", 3600},
		{"30d", 2592000},
		{"1h30m", 5400},
	}

	for _, tc := range testCases {
		d, err := duration.Parse(tc.input)

		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, d.Seconds(), tc.input)
	}
}

func TestSeconds_TruncatesSubSecondRemainder(t *testing.T) {
	d, err := duration.Parse("1s500ms")
	require.NoError(t, err)

	assert.Equal(t, 1, d.Seconds())
}
