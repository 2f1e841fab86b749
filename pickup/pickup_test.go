package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day, hour, min, sec int) time.Time {
	return time.Date(2026, time.March, day, hour, min, sec, 0, time.Local)
}

func TestBy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		placed time.Time
		want   time.Time
	}{
		{
			name:   "plain two hour lead",
			placed: at(10, 12, 15, 0),
			want:   at(10, 14, 15, 0),
		},
		{
			name:   "17:30 lands on 19:30, hour 19 is not capped",
			placed: at(10, 17, 30, 0),
			want:   at(10, 19, 30, 0),
		},
		{
			name:   "18:00 lands on 20:00 and is capped same day",
			placed: at(10, 18, 0, 0),
			want:   at(10, 18, 59, 59),
		},
		{
			name:   "19:59 is still same-day, capped",
			placed: at(10, 19, 59, 0),
			want:   at(10, 18, 59, 59),
		},
		{
			name:   "20:05 rolls to next day 18:59:59",
			placed: at(10, 20, 5, 0),
			want:   at(11, 18, 59, 59),
		},
		{
			name:   "23:30 rolls to next day 18:59:59",
			placed: at(10, 23, 30, 0),
			want:   at(11, 18, 59, 59),
		},
		{
			name:   "midnight gets the plain lead time",
			placed: at(10, 0, 0, 0),
			want:   at(10, 2, 0, 0),
		},
		{
			name:   "late order at month end rolls into next month",
			placed: at(31, 22, 0, 0),
			want:   time.Date(2026, time.April, 1, 18, 59, 59, 0, time.Local),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, By(tt.placed))
		})
	}
}
