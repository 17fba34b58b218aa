package entity

import "time"

// TimeSlot is a bookable appointment start time formatted as zero-padded
// "HH:MM" at 30-minute granularity.
type TimeSlot string

// AvailabilityRule is a per-weekday statement of a doctor's working hours.
// StartTime and EndTime are wall-clock "HH:MM" values. A rule with
// IsAvailable false is inert. At most one rule per weekday is meaningful;
// when duplicates exist the first rule in slice order wins.
type AvailabilityRule struct {
	DayOfWeek   time.Weekday
	StartTime   string
	EndTime     string
	IsAvailable bool
}
