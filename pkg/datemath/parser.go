package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts relative date strings to absolute time.Time values and
// recognizes date phrases inside free text.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves days in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>", "next week", "next month"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNext(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNext handles "next monday", "next friday", "next week" and "next month".
func (p *Parser) parseNext(relative string, baseTime time.Time) (time.Time, error) {
	name := strings.TrimPrefix(relative, "next ")

	switch name {
	case "week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	targetWeekday, ok := weekdays[name]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", name)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns the last instant of t's calendar day in the parser's timezone.
// Use it as an inclusive upper bound.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDay reads a YYYY-MM-DD day as midnight in the parser's timezone.
func (p *Parser) ParseDay(value string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}
