package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		checkInTime string
		want        Status
	}{
		{"early morning", "05:00:00", StatusOnTime},
		{"just before limit", "07:59:59", StatusOnTime},
		{"exactly on time limit", "08:00:00", StatusOnTime},
		{"one second late", "08:00:01", StatusLate},
		{"mid late window", "08:15:00", StatusLate},
		{"exactly late limit", "08:30:00", StatusLate},
		{"one second very late", "08:30:01", StatusVeryLate},
		{"late morning", "10:45:00", StatusVeryLate},
		{"empty means absent", "", StatusAbsent},
		{"garbage means absent", "not-a-time", StatusAbsent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.checkInTime))
		})
	}
}

func TestClassifyAt_MatchesClassify(t *testing.T) {
	at := time.Date(2026, 3, 9, 8, 30, 0, 0, time.Local)
	assert.Equal(t, StatusLate, ClassifyAt(at))

	at = time.Date(2026, 3, 9, 8, 30, 1, 0, time.Local)
	assert.Equal(t, StatusVeryLate, ClassifyAt(at))

	at = time.Date(2026, 3, 9, 6, 0, 0, 0, time.Local)
	assert.Equal(t, StatusOnTime, ClassifyAt(at))
}
