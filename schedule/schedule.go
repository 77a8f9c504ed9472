// Package schedule shapes a doctor's stored availability into
// weekday-indexed time slot views.
package schedule

import "virtual-healthcare/models"

// WeekDays are the canonical weekday names, in display order.
var WeekDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// Source says where a weekly view came from: the doctor's own slot rows or
// the default template filtered by the doctor's available days.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceDerived  Source = "derived"
)

// defaultTemplate is the canned weekly slot table used for doctor records
// that predate per-doctor time slots. Sunday is closed.
var defaultTemplate = map[string][]models.TimeSlot{
	"Monday": {
		{StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
		{StartTime: "14:00", EndTime: "17:00", Display: "2:00 PM - 5:00 PM"},
	},
	"Tuesday": {
		{StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
		{StartTime: "14:00", EndTime: "17:00", Display: "2:00 PM - 5:00 PM"},
	},
	"Wednesday": {
		{StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
		{StartTime: "15:00", EndTime: "17:00", Display: "3:00 PM - 5:00 PM"},
	},
	"Thursday": {
		{StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
		{StartTime: "14:00", EndTime: "17:00", Display: "2:00 PM - 5:00 PM"},
	},
	"Friday": {
		{StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
		{StartTime: "15:00", EndTime: "16:00", Display: "3:00 PM - 4:00 PM"},
	},
	"Saturday": {
		{StartTime: "10:00", EndTime: "13:00", Display: "10:00 AM - 1:00 PM"},
	},
	"Sunday": {},
}

// Weekly is a doctor's availability partitioned by weekday name.
type Weekly struct {
	Source Source
	days   map[string][]models.TimeSlot
}

// Build shapes the doctor's recurring availability. Doctors carrying explicit
// time slots are partitioned by exact day-name match, keeping input order.
// Legacy records without slots fall back to the default template, restricted
// to the days listed in AvailableDays.
func Build(doctor *models.Doctor) *Weekly {
	if len(doctor.TimeSlots) > 0 {
		days := make(map[string][]models.TimeSlot)
		for _, slot := range doctor.TimeSlots {
			days[slot.Day] = append(days[slot.Day], slot)
		}
		return &Weekly{Source: SourceExplicit, days: days}
	}

	days := make(map[string][]models.TimeSlot)
	for _, day := range doctor.AvailableDays {
		if slots, ok := defaultTemplate[day]; ok {
			days[day] = slots
		}
	}
	return &Weekly{Source: SourceDerived, days: days}
}

// SlotsForDay returns the slots for a weekday. A day with no slots, or an
// unrecognized day string, yields an empty list: closed, not an error.
func (w *Weekly) SlotsForDay(day string) []models.TimeSlot {
	slots := w.days[day]
	if slots == nil {
		return []models.TimeSlot{}
	}
	return slots
}

// IsDayAvailable reports whether the doctor has at least one slot that day.
func (w *Weekly) IsDayAvailable(day string) bool {
	return len(w.days[day]) > 0
}

// Week returns the full seven-day view keyed by weekday name. Closed days
// map to empty lists so callers always see all seven keys.
func (w *Weekly) Week() map[string][]models.TimeSlot {
	week := make(map[string][]models.TimeSlot, len(WeekDays))
	for _, day := range WeekDays {
		week[day] = w.SlotsForDay(day)
	}
	return week
}
