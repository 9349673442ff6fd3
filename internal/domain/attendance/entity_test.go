package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPresentFlag(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		checked bool
		want    Status
	}{
		{"check forces present from empty", "", true, StatusPresent},
		{"check forces present over absent", StatusAbsent, true, StatusPresent},
		{"check forces present over late", StatusLate, true, StatusPresent},
		{"uncheck clears present", StatusPresent, false, ""},
		{"uncheck leaves absent alone", StatusAbsent, false, StatusAbsent},
		{"uncheck leaves late alone", StatusLate, false, StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ApplyPresentFlag(c.current, c.checked))
		})
	}
}

func TestApplyAbsentFlag(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		checked bool
		want    Status
	}{
		{"check forces absent from empty", "", true, StatusAbsent},
		{"check forces absent over present", StatusPresent, true, StatusAbsent},
		{"uncheck clears absent", StatusAbsent, false, ""},
		{"uncheck leaves present alone", StatusPresent, false, StatusPresent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ApplyAbsentFlag(c.current, c.checked))
		})
	}
}

// The checkbox reducers can never leave both flags set: whichever box is
// checked last wins.
func TestFlagReducersAreMutuallyExclusive(t *testing.T) {
	s := ApplyPresentFlag("", true)
	s = ApplyAbsentFlag(s, true)
	assert.Equal(t, StatusAbsent, s)

	s = ApplyPresentFlag(s, true)
	assert.Equal(t, StatusPresent, s)

	isPresent, isAbsent := Flags(s)
	assert.True(t, isPresent)
	assert.False(t, isAbsent)
}

func TestStatusFromFlags(t *testing.T) {
	status, ok := StatusFromFlags(true, false)
	assert.True(t, ok)
	assert.Equal(t, StatusPresent, status)

	status, ok = StatusFromFlags(false, true)
	assert.True(t, ok)
	assert.Equal(t, StatusAbsent, status)

	_, ok = StatusFromFlags(false, false)
	assert.False(t, ok, "no flag set means the row is skipped")

	_, ok = StatusFromFlags(true, true)
	assert.False(t, ok, "both flags set is not a valid state")
}

// Flags then StatusFromFlags round-trips for the two checkbox statuses; late
// is only reachable through the single-record form and projects to neither box.
func TestFlagsRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPresent, StatusAbsent} {
		isPresent, isAbsent := Flags(s)
		got, ok := StatusFromFlags(isPresent, isAbsent)
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	isPresent, isAbsent := Flags(StatusLate)
	assert.False(t, isPresent)
	assert.False(t, isAbsent)
}
