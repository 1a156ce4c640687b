package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseDay parses a calendar-day expression relative to now.
// Supported formats:
// - "today", "tomorrow", "yesterday"
// - weekday names ("mon".."sunday"), meaning the next such weekday
// - yyyy-mm-dd (e.g. "2026-08-31")
// - dd/mm/yyyy (e.g. "31/08/2026")
func ParseDay(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if wd, ok := weekdays[input]; ok {
		days := int(wd-now.Weekday()+7) % 7
		if days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days), nil
	}

	if day, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return day, nil
	}

	if day, err := parseSlashDate(input, now.Location()); err == nil {
		return day, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use: today, tomorrow, a weekday name, yyyy-mm-dd, or dd/mm/yyyy", input)
}

// ParseDueDate parses a timestamp for reminders: a day expression with an
// optional "HH:MM" suffix. Without a time, the due moment is 09:00.
func ParseDueDate(input string, now time.Time) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	dayPart := input
	hour, minute := 9, 0
	if fields := strings.Fields(input); len(fields) == 2 {
		clock, err := time.Parse("15:04", fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid time %q. Use HH:MM", fields[1])
		}
		dayPart = fields[0]
		hour, minute = clock.Hour(), clock.Minute()
	}

	day, err := ParseDay(dayPart, now)
	if err != nil {
		return nil, err
	}
	due := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &due, nil
}

// parseSlashDate parses dd/mm/yyyy
func parseSlashDate(input string, loc *time.Location) (time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)

	// Rejects overflow like 31/02 (handles leap years, etc.)
	if parsed.Day() != day || parsed.Month() != time.Month(month) || parsed.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return parsed, nil
}

// ParseWeekdays parses a comma-separated custom-day list ("sun,wed,sat")
// into weekday indices.
func ParseWeekdays(input string) ([]int, error) {
	var out []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		wd, ok := weekdays[part]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %q", part)
		}
		if !seen[int(wd)] {
			seen[int(wd)] = true
			out = append(out, int(wd))
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one weekday is required")
	}
	return out, nil
}
