// Package format renders timestamps for history listings and the world
// clock according to the display_date and display_time settings.
package format

import (
	"fmt"
	"time"
)

// Formatter holds the layouts resolved from configuration.
type Formatter struct {
	date       string
	clock      string
	clockFull  string
	twelveHour bool
}

// New resolves layouts through get, usually config.Get. Missing or
// unknown values fall back to yyyy-mm-dd and 24h.
func New(get func(string) (string, bool)) Formatter {
	displayDate, _ := get("display_date")
	displayTime, _ := get("display_time")

	f := Formatter{date: dateLayout(displayDate)}
	if displayTime == "12h" {
		f.clock, f.clockFull, f.twelveHour = "3:04 PM", "3:04:05 PM", true
	} else {
		f.clock, f.clockFull = "15:04", "15:04:05"
	}
	return f
}

func dateLayout(value string) string {
	switch value {
	case "", "yyyy-mm-dd":
		return "2006-01-02"
	case "dd/mm/yyyy":
		return "02/01/2006"
	case "mm/dd/yyyy":
		return "01/02/2006"
	default:
		return value
	}
}

// DateTime formats date and time, e.g. "2024-01-23 15:04".
func (f Formatter) DateTime(t time.Time) string {
	return t.Local().Format(f.date + " " + f.clock)
}

// Time formats the time of day with seconds, e.g. "15:04:05".
func (f Formatter) Time(t time.Time) string {
	return t.Local().Format(f.clockFull)
}

// Ago describes how long before now t was, in the largest whole unit.
func Ago(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}

// GameClock converts a tick of the day to a wall clock reading. Tick 0
// is 06:00 and a day has 24000 ticks.
func (f Formatter) GameClock(tick int) string {
	minutes := (tick*60/1000 + 6*60) % (24 * 60)
	at := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return at.Format(f.clock)
}
