package usecase

import (
	"fmt"
	"time"

	"clinicconnect/internal/domain/entity"
)

// DefaultHorizonDays is the booking look-ahead window used when the
// caller passes a non-positive horizon.
const DefaultHorizonDays = 14

// AvailabilityPlanner derives bookable dates and time slots from a
// doctor's weekly availability rules. Both operations are pure functions
// of their inputs: they never mutate the rule set, never fail, and
// signal "no availability" with an empty result.
type AvailabilityPlanner interface {
	BookableDates(rules []entity.AvailabilityRule, reference time.Time, horizonDays int) []time.Time
	TimeSlots(rules []entity.AvailabilityRule, date time.Time) []entity.TimeSlot
}

type availabilityPlanner struct{}

func NewAvailabilityPlanner() AvailabilityPlanner {
	return &availabilityPlanner{}
}

// BookableDates returns the calendar days on which the doctor has an
// active rule, over the horizonDays days following the reference date.
// The reference date itself is excluded; results are midnight-normalized
// in the reference date's location and ascend by date.
func (p *availabilityPlanner) BookableDates(rules []entity.AvailabilityRule, reference time.Time, horizonDays int) []time.Time {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	start := startOfDay(reference)
	dates := make([]time.Time, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		candidate := start.AddDate(0, 0, i)
		if hasActiveRule(rules, candidate.Weekday()) {
			dates = append(dates, candidate)
		}
	}
	return dates
}

// TimeSlots returns the 30-minute appointment start times for the given
// date, taken from the first rule matching the date's weekday. A missing
// or inactive rule yields no slots. Only the hour component of the
// rule's StartTime/EndTime is read; non-zero minutes are ignored, which
// matches the booking form behavior this was lifted from.
func (p *availabilityPlanner) TimeSlots(rules []entity.AvailabilityRule, date time.Time) []entity.TimeSlot {
	rule := firstRule(rules, date.Weekday())
	if rule == nil || !rule.IsAvailable {
		return nil
	}

	startHour := hourOf(rule.StartTime)
	endHour := hourOf(rule.EndTime)
	if startHour >= endHour {
		return nil
	}

	slots := make([]entity.TimeSlot, 0, (endHour-startHour)*2)
	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, entity.TimeSlot(fmt.Sprintf("%02d:00", hour)))
		slots = append(slots, entity.TimeSlot(fmt.Sprintf("%02d:30", hour)))
	}
	return slots
}

// hasActiveRule reports whether any rule covers the weekday with
// IsAvailable set.
func hasActiveRule(rules []entity.AvailabilityRule, day time.Weekday) bool {
	for _, rule := range rules {
		if rule.DayOfWeek == day && rule.IsAvailable {
			return true
		}
	}
	return false
}

// firstRule returns the first rule covering the weekday, active or not.
// Duplicate weekday rules are undefined by the data model; first match
// in slice order is the deterministic tie-break.
func firstRule(rules []entity.AvailabilityRule, day time.Weekday) *entity.AvailabilityRule {
	for i := range rules {
		if rules[i].DayOfWeek == day {
			return &rules[i]
		}
	}
	return nil
}

// hourOf reads the hour component of an "HH:MM" value. Malformed values
// behave as hour zero, which generates no slots in any valid rule.
func hourOf(value string) int {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0
	}
	return t.Hour()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
