package calendar_test

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"moncal/calendar"
	"moncal/storage"
)

func writeMonthFixture(t *testing.T, store *storage.Store, month, year int) {
	t.Helper()
	rec := storage.MonthRecord{
		Month: month,
		Year:  year,
		Events: []storage.EventRecord{{
			EventID:          1,
			EventName:        "Checkpoint",
			EventDescription: "Window probe",
			EventDate:        fmt.Sprintf("%04d-%02d-05", year, month),
			EventLocation:    "Home",
			EventType:        "Chore",
			EventStatus:      "Confirmed",
			EventNotes:       "None",
		}},
	}
	if err := store.Write(rec); err != nil {
		t.Error(err)
	}
}

func TestLoadWindow(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	for m := 1; m <= 12; m++ {
		writeMonthFixture(t, store, m, 2023)
	}

	ctrl := calendar.NewDataController(store)
	if err := ctrl.LoadWindow(day(2023, time.June, 15)); err != nil {
		t.Error(err)
	}

	// case: exactly the five months around the reference load
	func() {
		if len(ctrl.Months()) != 5 {
			t.Error("want 5 months, got", len(ctrl.Months()))
		}
		for m := 4; m <= 8; m++ {
			if len(ctrl.GetEvents(m, 2023)) != 1 {
				t.Error("month", m, "should be loaded")
			}
		}
	}()

	// case: months outside the window stay unloaded
	func() {
		if len(ctrl.GetEvents(3, 2023)) != 0 || len(ctrl.GetEvents(9, 2023)) != 0 {
			t.Error("months outside the window should stay unloaded")
		}
	}()
}

func TestLoadWindowYearWraparound(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	for m := 8; m <= 12; m++ {
		writeMonthFixture(t, store, m, 2022)
	}
	for m := 1; m <= 7; m++ {
		writeMonthFixture(t, store, m, 2023)
	}

	// case: january window reaches into the previous year
	func() {
		ctrl := calendar.NewDataController(store)
		if err := ctrl.LoadWindow(day(2023, time.January, 10)); err != nil {
			t.Error(err)
		}
		if len(ctrl.Months()) != 5 {
			t.Error("want 5 months, got", len(ctrl.Months()))
		}
		for _, my := range [][2]int{{11, 2022}, {12, 2022}, {1, 2023}, {2, 2023}, {3, 2023}} {
			if len(ctrl.GetEvents(my[0], my[1])) != 1 {
				t.Error("month should be loaded:", my[0], my[1])
			}
		}
		if len(ctrl.GetEvents(10, 2022)) != 0 || len(ctrl.GetEvents(4, 2023)) != 0 {
			t.Error("window edges leaked")
		}
	}()

	// case: december window reaches into the next year
	func() {
		ctrl := calendar.NewDataController(store)
		if err := ctrl.LoadWindow(day(2022, time.December, 5)); err != nil {
			t.Error(err)
		}
		for _, my := range [][2]int{{10, 2022}, {11, 2022}, {12, 2022}, {1, 2023}, {2, 2023}} {
			if len(ctrl.GetEvents(my[0], my[1])) != 1 {
				t.Error("month should be loaded:", my[0], my[1])
			}
		}
	}()
}

func TestLoadWindowSkipsBadRecords(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)
	writeMonthFixture(t, store, 1, 2023)

	// no events field
	if err := os.WriteFile(filepath.Join(dir, "february2023.yaml"),
		[]byte("month: 2\nyear: 2023\n"), 0o644); err != nil {
		t.Error(err)
	}
	// unreadable event date
	if err := os.WriteFile(filepath.Join(dir, "march2023.yaml"),
		[]byte("month: 3\nyear: 2023\nevents:\n  - event_id: 1\n    event_name: Broken\n    event_date: not-a-date\n"), 0o644); err != nil {
		t.Error(err)
	}
	// not yaml at all
	if err := os.WriteFile(filepath.Join(dir, "april2023.yaml"),
		[]byte("{{{"), 0o644); err != nil {
		t.Error(err)
	}

	ctrl := calendar.NewDataController(store)
	if err := ctrl.LoadWindow(day(2023, time.February, 10)); err != nil {
		t.Error(err)
	}

	// case: only the well-formed record loads
	func() {
		if len(ctrl.Months()) != 1 {
			t.Error("want one month, got", len(ctrl.Months()))
		}
		if len(ctrl.GetEvents(1, 2023)) != 1 {
			t.Error("january should be loaded")
		}
	}()
}

func TestLoadWindowEmptyEventsList(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "may2023.yaml"),
		[]byte("month: 5\nyear: 2023\nevents: []\n"), 0o644); err != nil {
		t.Error(err)
	}

	ctrl := calendar.NewDataController(store)
	if err := ctrl.LoadWindow(day(2023, time.May, 10)); err != nil {
		t.Error(err)
	}

	// case: an explicit empty list loads as an empty bucket
	func() {
		if len(ctrl.Months()) != 1 {
			t.Error("want one month, got", len(ctrl.Months()))
		}
		if len(ctrl.GetEvents(5, 2023)) != 0 {
			t.Error("bucket should be empty")
		}
	}()
}

func TestSaveOnShutdown(t *testing.T) {
	dir := t.TempDir()
	ctrl := calendar.NewDemoDataController(storage.NewStore(dir))
	if err := ctrl.SaveOnShutdown(); err != nil {
		t.Error(err)
	}

	// case: one document per month under the derived name
	func() {
		for _, name := range []string{"january2023.yaml", "february2023.yaml", "march2023.yaml"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Error("missing document", name)
			}
		}
	}()

	// case: documents carry the display formats
	func() {
		raw, err := os.ReadFile(filepath.Join(dir, "january2023.yaml"))
		if err != nil {
			t.Error(err)
		}
		for _, want := range []string{
			"month: 1",
			"year: 2023",
			"event_id: 1",
			"event_name: Soccer",
			"2023-01-15",
			"10:00",
			"event_notes: Bring water",
			"2023-01-14 00:00",
		} {
			if !strings.Contains(string(raw), want) {
				t.Error("january document should contain", want)
			}
		}
	}()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := storage.NewStore(t.TempDir())
	demo := calendar.NewDemoDataController(store)
	if err := demo.SaveOnShutdown(); err != nil {
		t.Error(err)
	}

	ctrl := calendar.NewDataController(store)
	if err := ctrl.LoadWindow(day(2023, time.February, 10)); err != nil {
		t.Error(err)
	}
	if len(ctrl.Months()) != 3 {
		t.Error("want three months back, got", len(ctrl.Months()))
	}

	// case: every event field survives the round trip
	for _, month := range demo.Months() {
		want := month.Events()
		got := ctrl.GetEvents(month.Month(), month.Year())
		if len(got) != len(want) {
			t.Error("event count mismatch in", month.Month(), month.Year())
			continue
		}
		for i := range want {
			w, g := want[i], got[i]
			if g.ID != w.ID || g.Name != w.Name || g.Description != w.Description {
				t.Error("event identity fields should round-trip, event", w.ID)
			}
			if g.FormatDate() != w.FormatDate() || g.FormatTime() != w.FormatTime() || g.FormatReminder() != w.FormatReminder() {
				t.Error("event times should round-trip, event", w.ID)
			}
			if g.Location != w.Location || g.Type != w.Type || g.Status != w.Status {
				t.Error("event place fields should round-trip, event", w.ID)
			}
			if g.Priority != w.Priority || g.Notes != w.Notes {
				t.Error("event extras should round-trip, event", w.ID)
			}
		}
	}
}

func TestEmptiedBucketRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewStore(dir)
	demo := calendar.NewDemoDataController(store)
	// clone first, RemoveEvent mutates the backing slice
	for _, event := range slices.Clone(demo.GetEvents(1, 2023)) {
		if err := demo.RemoveEvent(event); err != nil {
			t.Error(err)
		}
	}
	if err := demo.SaveOnShutdown(); err != nil {
		t.Error(err)
	}

	// case: the emptied month still writes a document
	func() {
		raw, err := os.ReadFile(filepath.Join(dir, "january2023.yaml"))
		if err != nil {
			t.Error(err)
		}
		if !strings.Contains(string(raw), "events: []") {
			t.Error("emptied month should persist an empty events list")
		}
	}()

	// case: and loads back as an empty bucket
	func() {
		ctrl := calendar.NewDataController(store)
		if err := ctrl.LoadWindow(day(2023, time.February, 10)); err != nil {
			t.Error(err)
		}
		if len(ctrl.Months()) != 3 {
			t.Error("want three months back, got", len(ctrl.Months()))
		}
		if len(ctrl.GetEvents(1, 2023)) != 0 {
			t.Error("january should load back empty")
		}
	}()
}
