package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicReservationService/pkg/types"
)

// BlockedTime is an administrator-declared unavailable window on a date
type BlockedTime struct {
	ID        string
	Date      time.Time
	TimeStart types.TimeString
	TimeEnd   types.TimeString
	Start     time.Time
	End       time.Time
	Reason    *string
	CreatedAt time.Time
}

// Normalize truncates Date to midnight and recomputes Start and End
func (b *BlockedTime) Normalize() {
	b.Date = NormalizeDate(b.Date)
	b.Start = CombineDateAndTime(b.Date, b.TimeStart)
	b.End = CombineDateAndTime(b.Date, b.TimeEnd)
}

// Window returns the wall-clock interval of the block
func (b *BlockedTime) Window() TimeWindow {
	return TimeWindow{Start: b.TimeStart, End: b.TimeEnd}
}

// Blocks reports whether this record blocks the requested window.
// The block counts only if it starts at or after the requested start and
// ends strictly before the requested end. This is a containment test, not
// an overlap test: a block covering the whole request, or ending exactly
// at the requested end, does not block it.
func (b *BlockedTime) Blocks(requested TimeWindow) bool {
	return b.TimeStart.Compare(requested.Start) >= 0 &&
		b.TimeEnd.Compare(requested.End) < 0
}
