package domain

// Default scheduling values
const (
	DefaultOpenTime               = "07:00"
	DefaultCloseTime              = "20:00"
	DefaultConflictBufferMinutes  = 15
	DefaultSlotGranularityMinutes = 30
)

// Business validation constants
const (
	MaxConflictBufferMinutes  = 240
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 240
	MaxReasonLength           = 500
	MaxNoteLength             = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultWeekdays Monday to Friday
var DefaultWeekdays = []int{1, 2, 3, 4, 5}
