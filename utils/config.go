package utils

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	calendarDir string
	location    *time.Location

	demoMode  bool
	quickAdd  string
	icsExport string
}

// NewConfig reads the process environment once, validating as it goes.
// Expects godotenv.Load to have run already. An unparsable TIMEZONE is
// fatal; everything else falls back to a default.
func NewConfig() *Config {
	return &Config{
		calendarDir: func() string {
			dir := os.Getenv("CALENDAR_DIR")
			if dir == "" {
				dir = "data_storage"
			}
			slog.Debug("env", "CALENDAR_DIR", dir)
			return dir
		}(),
		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			slog.Debug("env", "TIMEZONE", timezoneStr)
			switch timezoneStr {
			case "":
				return time.Local
			case "UTC":
				return time.UTC
			default:
				loc, err := time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("can't load TIMEZONE", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
				return loc
			}
		}(),
		demoMode: func() bool {
			demo := os.Getenv("DEMO_MODE") != ""
			slog.Debug("env", "DEMO_MODE", demo)
			return demo
		}(),
		quickAdd: func() string {
			text := os.Getenv("QUICK_ADD")
			if text != "" {
				slog.Debug("env", "QUICK_ADD", text)
			}
			return text
		}(),
		icsExport: func() string {
			path := os.Getenv("ICS_EXPORT")
			if path != "" {
				slog.Debug("env", "ICS_EXPORT", path)
			}
			return path
		}(),
	}
}

// LogLevelFromEnv maps the LOG_LEVEL env onto a slog level, defaulting to
// info. Read directly instead of through Config so the handler can be
// installed before anything logs.
func LogLevelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get CALENDAR_DIR env, default to data_storage
func (c *Config) GetCalendarDir() string {
	return c.calendarDir
}

// Get TIMEZONE env, default to the system timezone
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get DEMO_MODE env, set means on
func (c *Config) GetDemoMode() bool {
	return c.demoMode
}

// Get QUICK_ADD env, empty means off
func (c *Config) GetQuickAdd() string {
	return c.quickAdd
}

// Get ICS_EXPORT env, empty means off
func (c *Config) GetICSExport() string {
	return c.icsExport
}
