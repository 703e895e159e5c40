package calendar

import (
	"time"

	"moncal/storage"
)

// NewDemoDataController returns a controller pre-populated with three fixed
// months of sample events instead of anything persisted. Demo state still
// saves through store on shutdown, so a demo run seeds the storage
// directory.
func NewDemoDataController(store *storage.Store) *DataController {
	c := NewDataController(store)
	c.months = demoMonths()
	return c
}

func demoMonths() []*Month {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	clock := func(hh, mm int) time.Time {
		return time.Date(0, time.January, 1, hh, mm, 0, 0, time.UTC)
	}

	return []*Month{
		{month: 1, year: 2023, events: []Event{
			{
				ID: 1, Name: "Soccer", Description: "Soccer game",
				Date: day(2023, time.January, 15), Time: clock(10, 0),
				Location: "Stadium", Type: "Sport", Status: "Confirmed",
				Priority: 1, Notes: "Bring water",
				Reminder: day(2023, time.January, 14),
			},
			{
				ID: 4, Name: "Yoga Class", Description: "Morning yoga session",
				Date: day(2023, time.January, 22), Time: clock(7, 0),
				Location: "Gym", Type: "Health", Status: "Confirmed",
				Priority: 2, Notes: "Bring yoga mat",
				Reminder: day(2023, time.January, 21),
			},
		}},
		{month: 2, year: 2023, events: []Event{
			{
				ID: 2, Name: "Basketball", Description: "Basketball game",
				Date: day(2023, time.February, 20), Time: clock(18, 0),
				Location: "Arena", Type: "Sport", Status: "Confirmed",
				Priority: 1, Notes: "Bring water",
				Reminder: day(2023, time.February, 19),
			},
			{
				ID: 5, Name: "Team Meeting", Description: "Monthly team meeting",
				Date: day(2023, time.February, 10), Time: clock(14, 0),
				Location: "Office", Type: "Work", Status: "Confirmed",
				Priority: 3, Notes: "Prepare slides",
				Reminder: day(2023, time.February, 9),
			},
		}},
		{month: 3, year: 2023, events: []Event{
			{
				ID: 3, Name: "Doc Appointment", Description: "Doctor appointment",
				Date: day(2023, time.March, 25), Time: clock(9, 0),
				Location: "Clinic", Type: "Health", Status: "Confirmed",
				Priority: 1, Notes: "Bring insurance card",
				Reminder: day(2023, time.March, 24),
			},
			{
				ID: 6, Name: "Birthday Party", Description: "Friend's birthday celebration",
				Date: day(2023, time.March, 18), Time: clock(19, 0),
				Location: "Restaurant", Type: "Social", Status: "Confirmed",
				Priority: 2, Notes: "Buy a gift",
				Reminder: day(2023, time.March, 17),
			},
		}},
	}
}
