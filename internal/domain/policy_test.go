package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-06-03 is a Monday
var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func TestBusinessHours_Contains(t *testing.T) {
	hours := DefaultSchedulingPolicy().Hours

	tests := []struct {
		name   string
		date   time.Time
		window TimeWindow
		want   bool
	}{
		{name: "inside", date: monday, window: TimeWindow{Start: "10:00", End: "10:30"}, want: true},
		{name: "exact bounds", date: monday, window: TimeWindow{Start: "07:00", End: "20:00"}, want: true},
		{name: "starts before open", date: monday, window: TimeWindow{Start: "06:45", End: "07:30"}, want: false},
		{name: "ends after close", date: monday, window: TimeWindow{Start: "19:30", End: "20:15"}, want: false},
		{name: "friday", date: monday.AddDate(0, 0, 4), window: TimeWindow{Start: "10:00", End: "10:30"}, want: true},
		{name: "saturday", date: monday.AddDate(0, 0, 5), window: TimeWindow{Start: "10:00", End: "10:30"}, want: false},
		{name: "sunday", date: monday.AddDate(0, 0, 6), window: TimeWindow{Start: "10:00", End: "10:30"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hours.Contains(tt.date, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBusinessHours_ContainsZeroDate(t *testing.T) {
	_, err := DefaultSchedulingPolicy().Hours.Contains(time.Time{}, TimeWindow{Start: "10:00", End: "10:30"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBusinessHours_WeekendWhateverTheTime(t *testing.T) {
	hours := DefaultSchedulingPolicy().Hours
	saturday := monday.AddDate(0, 0, 5)

	for slot := range GenerateTimeSlots("07:00", "19:30", 30) {
		ok, err := hours.Contains(saturday, TimeWindow{Start: slot, End: slot.PlusMinutes(30)})
		require.NoError(t, err)
		assert.False(t, ok, slot)
	}
}

func TestNewBusinessHours_Invalid(t *testing.T) {
	_, err := NewBusinessHours("20:00", "07:00", DefaultWeekdays)
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = NewBusinessHours("07:00", "20:00", []int{1, 7})
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = NewBusinessHours("07:00", "20:00", nil)
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestSchedulingPolicy_Validate(t *testing.T) {
	policy := DefaultSchedulingPolicy()
	require.NoError(t, policy.Validate())
	assert.True(t, policy.PropagatesNotificationFailures())

	policy.SlotGranularityMinutes = 0
	assert.ErrorIs(t, policy.Validate(), ErrInvalidPolicy)

	policy = DefaultSchedulingPolicy()
	policy.NotificationFailure = "ignore"
	assert.ErrorIs(t, policy.Validate(), ErrInvalidPolicy)
}
