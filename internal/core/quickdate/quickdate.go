// Package quickdate resolves the small natural-language date phrases used
// by quick-add ("tomorrow", "next friday", "mar 15", "in 3 days").
// All parsing is best-effort and relative to a caller-supplied date.
package quickdate

import (
	"strconv"
	"strings"

	"github.com/colonyops/bugbee/internal/core/workitem"
)

var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

var months = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

// Parse resolves a date phrase relative to today. Recognized forms:
//
//	today, tomorrow, yesterday
//	monday .. sunday            (next occurrence, strictly after today)
//	next monday .. next sunday  (the occurrence after that)
//	in N days, in N weeks
//	mar 15, march 15            (next occurrence; rolls to next year if past)
//	2024-03-15                  (literal)
//
// Returns false when the phrase is not a date.
func Parse(phrase string, today workitem.Date) (workitem.Date, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(phrase)))
	if len(fields) == 0 {
		return "", false
	}

	switch len(fields) {
	case 1:
		word := fields[0]
		switch word {
		case "today":
			return today, true
		case "tomorrow":
			return today.AddDays(1), true
		case "yesterday":
			return today.AddDays(-1), true
		}
		if wd, ok := weekdays[word]; ok {
			return nextWeekday(today, wd), true
		}
		if d, err := workitem.ParseDate(word); err == nil {
			return d, true
		}
	case 2:
		if fields[0] == "next" {
			if wd, ok := weekdays[fields[1]]; ok {
				return nextWeekday(today, wd).AddDays(7), true
			}
			if fields[1] == "week" {
				return today.AddDays(7), true
			}
			if fields[1] == "month" {
				t := today.Time().AddDate(0, 1, 0)
				return workitem.DateOf(t), true
			}
		}
		if m, ok := months[fields[0]]; ok {
			if day, err := strconv.Atoi(strings.TrimSuffix(fields[1], ",")); err == nil {
				return monthDay(today, m, day)
			}
		}
	case 3:
		// "in N days" / "in N weeks"
		if fields[0] == "in" {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 {
				return "", false
			}
			switch fields[2] {
			case "day", "days":
				return today.AddDays(n), true
			case "week", "weeks":
				return today.AddDays(n * 7), true
			}
		}
	}

	return "", false
}

// Extract finds a trailing date phrase in quick-add text and strips it,
// returning the remaining title and the resolved due date. An optional
// "by", "on", or "due" before the phrase is stripped too.
//
//	"fix login crash by tomorrow" -> ("fix login crash", tomorrow, true)
//	"pay invoices mar 15"         -> ("pay invoices", Mar 15, true)
//
// When no date phrase is found the text is returned unchanged.
func Extract(text string, today workitem.Date) (string, workitem.Date, bool) {
	fields := strings.Fields(text)

	// Longest phrase first so "in 3 days" wins over a bare "days".
	for take := min(3, len(fields)-1); take >= 1; take-- {
		phrase := strings.Join(fields[len(fields)-take:], " ")
		due, ok := Parse(phrase, today)
		if !ok {
			continue
		}

		rest := fields[:len(fields)-take]
		if len(rest) > 0 {
			switch strings.ToLower(rest[len(rest)-1]) {
			case "by", "on", "due":
				rest = rest[:len(rest)-1]
			}
		}
		return strings.Join(rest, " "), due, true
	}

	return strings.TrimSpace(text), "", false
}

// nextWeekday returns the next occurrence of the weekday strictly after
// today.
func nextWeekday(today workitem.Date, weekday int) workitem.Date {
	delta := (weekday - int(today.Time().Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return today.AddDays(delta)
}

// monthDay resolves a month/day pair to its next occurrence, rolling to the
// following year when the date has already passed.
func monthDay(today workitem.Date, month, day int) (workitem.Date, bool) {
	if day < 1 || day > 31 {
		return "", false
	}
	year := today.Time().Year()
	d, err := workitem.ParseDate(format(year, month, day))
	if err != nil {
		return "", false
	}
	if d.Before(today) {
		d, err = workitem.ParseDate(format(year+1, month, day))
		if err != nil {
			return "", false
		}
	}
	return d, true
}

func format(year, month, day int) string {
	return strconv.Itoa(year) + "-" + pad(month) + "-" + pad(day)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
