package schedule

import (
	"testing"

	"virtual-healthcare/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func explicitDoctor() *models.Doctor {
	return &models.Doctor{
		ID:            1,
		Name:          "Dr. Sarah Haider",
		AvailableDays: pq.StringArray{"Monday", "Friday"},
		TimeSlots: []models.TimeSlot{
			{Day: "Monday", StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
			{Day: "Monday", StartTime: "14:00", EndTime: "17:00", Display: "2:00 PM - 5:00 PM"},
			{Day: "Friday", StartTime: "09:00", EndTime: "12:00", Display: "9:00 AM - 12:00 PM"},
		},
	}
}

func TestExplicitSlotsPartitionedByDay(t *testing.T) {
	weekly := Build(explicitDoctor())
	assert.Equal(t, SourceExplicit, weekly.Source)

	monday := weekly.SlotsForDay("Monday")
	require.Len(t, monday, 2)
	// input order preserved
	assert.Equal(t, "09:00", monday[0].StartTime)
	assert.Equal(t, "14:00", monday[1].StartTime)

	friday := weekly.SlotsForDay("Friday")
	require.Len(t, friday, 1)
	assert.Equal(t, "9:00 AM - 12:00 PM", friday[0].Display)
}

func TestDayWithNoSlotsIsClosedNotMissing(t *testing.T) {
	weekly := Build(explicitDoctor())

	assert.False(t, weekly.IsDayAvailable("Tuesday"))
	assert.Empty(t, weekly.SlotsForDay("Tuesday"))

	sunday := weekly.SlotsForDay("Sunday")
	assert.NotNil(t, sunday)
	assert.Empty(t, sunday)
}

func TestUnknownDayYieldsEmptyResult(t *testing.T) {
	weekly := Build(explicitDoctor())

	assert.Empty(t, weekly.SlotsForDay("Funday"))
	assert.False(t, weekly.IsDayAvailable("Funday"))
	// exact-string comparison: no case normalization
	assert.Empty(t, weekly.SlotsForDay("monday"))
	assert.False(t, weekly.IsDayAvailable("monday"))
}

func TestIsDayAvailableMatchesSlotPresence(t *testing.T) {
	weekly := Build(explicitDoctor())

	assert.True(t, weekly.IsDayAvailable("Monday"))
	assert.True(t, weekly.IsDayAvailable("Friday"))
	assert.False(t, weekly.IsDayAvailable("Wednesday"))
}

func TestDerivedFallbackFiltersTemplateByAvailableDays(t *testing.T) {
	doctor := &models.Doctor{
		ID:            2,
		Name:          "Dr. Mustafa Hassan",
		AvailableDays: pq.StringArray{"Tuesday", "Saturday"},
	}
	weekly := Build(doctor)
	assert.Equal(t, SourceDerived, weekly.Source)

	tuesday := weekly.SlotsForDay("Tuesday")
	require.Len(t, tuesday, 2)
	assert.Equal(t, "9:00 AM - 12:00 PM", tuesday[0].Display)
	assert.Equal(t, "2:00 PM - 5:00 PM", tuesday[1].Display)

	saturday := weekly.SlotsForDay("Saturday")
	require.Len(t, saturday, 1)
	assert.Equal(t, "10:00 AM - 1:00 PM", saturday[0].Display)

	// template days the doctor did not list stay closed
	assert.False(t, weekly.IsDayAvailable("Monday"))
	assert.Empty(t, weekly.SlotsForDay("Monday"))
}

func TestDerivedFallbackIgnoresUnknownAvailableDays(t *testing.T) {
	doctor := &models.Doctor{
		ID:            3,
		AvailableDays: pq.StringArray{"Noday", "Sunday"},
	}
	weekly := Build(doctor)

	assert.Empty(t, weekly.SlotsForDay("Noday"))
	// Sunday exists in the template but carries no slots
	assert.False(t, weekly.IsDayAvailable("Sunday"))
}

func TestWeekAlwaysCarriesAllSevenDays(t *testing.T) {
	weekly := Build(explicitDoctor())
	week := weekly.Week()

	require.Len(t, week, 7)
	for _, day := range WeekDays {
		slots, ok := week[day]
		assert.True(t, ok, "missing day %s", day)
		assert.NotNil(t, slots)
	}
	assert.Len(t, week["Monday"], 2)
	assert.Empty(t, week["Sunday"])
}
