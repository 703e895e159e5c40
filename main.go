package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"moncal/calendar"
	"moncal/ical"
	"moncal/storage"
	"moncal/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      utils.LogLevelFromEnv(),
			TimeFormat: time.RFC1123Z,
		}),
	))
}

var (
	monthHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	eventLineStyle   = lipgloss.NewStyle().PaddingLeft(2)
	reminderStyle    = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("11"))
)

func main() {
	cfg := utils.NewConfig()
	store := storage.NewStore(cfg.GetCalendarDir())
	now := time.Now().In(cfg.GetLocation())

	var ctrl *calendar.DataController
	switch cfg.GetDemoMode() {
	case true:
		ctrl = calendar.NewDemoDataController(store)
		slog.Info("loaded demo data", "months", len(ctrl.Months()))
	case false:
		ctrl = calendar.NewDataController(store)
		if err := ctrl.LoadWindow(now); err != nil {
			slog.Error("can't load calendar data", "error", err)
			os.Exit(1)
		}
	}

	if text := cfg.GetQuickAdd(); text != "" {
		event, err := ctrl.QuickAdd(calendar.NewQuickAdder(), text, now)
		if err != nil {
			slog.Error("can't quick-add event", "text", text, "error", err)
			os.Exit(1)
		}
		slog.Info("quick-added event",
			"id", event.ID,
			"name", event.Name,
			"date", event.FormatDate(),
			"time", event.FormatTime(),
		)
	}

	printMonths(ctrl.Months())

	for _, event := range ctrl.UpcomingReminders(now, 24*time.Hour) {
		slog.Info("reminder due", "event", event.Name, "at", event.FormatReminder())
	}

	if path := cfg.GetICSExport(); path != "" {
		cal := ical.FromMonths("moncal", ctrl.Months())
		if err := cal.WriteFile(path); err != nil {
			slog.Error("can't export calendar", "path", path, "error", err)
			os.Exit(1)
		}
		slog.Info("exported calendar", "path", path)
	}

	if err := ctrl.SaveOnShutdown(); err != nil {
		slog.Error("can't save calendar data", "error", err)
		os.Exit(1)
	}
}

func printMonths(months []*calendar.Month) {
	for _, month := range months {
		header := fmt.Sprintf("%s %d", time.Month(month.Month()), month.Year())
		fmt.Println(monthHeaderStyle.Render(header))
		for _, event := range month.Events() {
			line := event.String()
			if event.HasReminder() {
				fmt.Println(reminderStyle.Render(line + " (reminder " + event.FormatReminder() + ")"))
				continue
			}
			fmt.Println(eventLineStyle.Render(line))
		}
	}
}
