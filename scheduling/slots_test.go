package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("09:00 - 10:00")
	require.NoError(t, err)
	assert.Equal(t, 9*60, w.Start)
	assert.Equal(t, 10*60, w.End)
}

func TestParseWindowSpacingNotSignificant(t *testing.T) {
	canonical, err := ParseWindow("09:00 - 10:00")
	require.NoError(t, err)

	for _, descriptor := range []string{"09:00-10:00", "09:00 -10:00", "  09:00 - 10:00  "} {
		w, err := ParseWindow(descriptor)
		require.NoError(t, err, descriptor)
		assert.Equal(t, canonical, w, descriptor)
	}
}

func TestParseWindowRejectsMalformed(t *testing.T) {
	for _, descriptor := range []string{
		"",
		"09:00",
		"nine to ten",
		"09:00 - 09:00",
		"10:00 - 09:00",
		"25:00 - 26:00",
		"09:61 - 10:00",
	} {
		_, err := ParseWindow(descriptor)
		assert.Error(t, err, descriptor)
	}
}

func TestWindowString(t *testing.T) {
	w, err := ParseWindow("9:05-10:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05 - 10:05", w.String())
}

func TestWindowPeriod(t *testing.T) {
	morning, err := ParseWindow("09:00 - 10:00")
	require.NoError(t, err)
	evening, err := ParseWindow("14:00 - 15:00")
	require.NoError(t, err)

	assert.Equal(t, "AM", morning.Period())
	assert.Equal(t, "PM", evening.Period())
	assert.True(t, morning.InPeriod("am"))
	assert.False(t, morning.InPeriod("PM"))
	assert.True(t, evening.InPeriod("pm"))
}
