package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bistro-systems/table-reserve/internal/httperr"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 11, 7, hour, min, 0, 0, time.Local)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", at(18, 0), at(20, 0), at(18, 0), at(20, 0), true},
		{"partial", at(18, 0), at(20, 0), at(19, 0), at(21, 0), true},
		{"contained", at(18, 0), at(20, 0), at(18, 30), at(19, 30), true},
		{"disjoint", at(18, 0), at(19, 0), at(20, 0), at(21, 0), false},
		{"touching end to start", at(18, 0), at(20, 0), at(20, 0), at(21, 0), false},
		{"touching start to end", at(20, 0), at(21, 0), at(18, 0), at(20, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// symmetric
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestClampDuration(t *testing.T) {
	assert.Equal(t, 30, ClampDuration(1))
	assert.Equal(t, 30, ClampDuration(29))
	assert.Equal(t, 30, ClampDuration(30))
	assert.Equal(t, 120, ClampDuration(120))
	assert.Equal(t, 300, ClampDuration(300))
	assert.Equal(t, 300, ClampDuration(301))
}

func TestValidateWindow(t *testing.T) {
	now := at(12, 0)

	cases := []struct {
		name       string
		start, end time.Time
		code       string
	}{
		{"valid", at(18, 0), at(20, 0), ""},
		{"end equals start", at(18, 0), at(18, 0), httperr.CodeEndBeforeStart},
		{"end before start", at(20, 0), at(18, 0), httperr.CodeEndBeforeStart},
		{"start in past", at(11, 0), at(13, 0), httperr.CodeStartInPast},
		{"29 minutes rejected", at(18, 0), at(18, 29), httperr.CodeDurationTooShort},
		{"30 minutes accepted", at(18, 0), at(18, 30), ""},
		{"300 minutes accepted", at(15, 0), at(20, 0), ""},
		{"301 minutes rejected", at(15, 0), at(20, 1), httperr.CodeDurationTooLong},
		{"ends exactly at closing", at(20, 0), at(22, 0), ""},
		{
			"one second past closing",
			at(20, 0),
			time.Date(2026, 11, 7, 22, 0, 1, 0, time.Local),
			httperr.CodeEndsAfterClosing,
		},
		{
			"ends after midnight",
			at(21, 0),
			time.Date(2026, 11, 8, 1, 0, 0, 0, time.Local),
			httperr.CodeEndsAfterClosing,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWindow(tc.start, tc.end, now)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.code),
				"want code %s, got %v", tc.code, err)
		})
	}
}

func TestValidateWindowCheckOrder(t *testing.T) {
	now := at(12, 0)

	// A window that is both in the past and too short reports the past-start
	// violation only after the end>start rule, matching the documented order.
	err := ValidateWindow(at(11, 0), at(11, 10), now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeStartInPast))

	err = ValidateWindow(at(11, 0), at(10, 0), now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEndBeforeStart))
}
