package datemath

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// impliedHour is used for phrases that name a day but no time.
const impliedHour = 12

const weekdayAlternation = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

type phraseMatcher struct {
	pattern *regexp.Regexp
	resolve func(p *Parser, groups []string, ref time.Time, opts Options) (time.Time, bool)
}

var phraseMatchers = []phraseMatcher{
	{
		pattern: regexp.MustCompile(`(?i)\b(?:day\s+after\s+tomorrow|today|tomorrow|yesterday)\b`),
		resolve: resolveRelative,
	},
	{
		pattern: regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:days?|weeks?|months?)\b`),
		resolve: resolveRelative,
	},
	{
		pattern: regexp.MustCompile(`(?i)\bnext\s+(?:` + weekdayAlternation + `|week|month)\b`),
		resolve: resolveRelative,
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:on\s+)?(` + weekdayAlternation + `)\b`),
		resolve: resolveWeekday,
	},
	{
		pattern: regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		resolve: resolveISODate,
	},
	{
		pattern: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`),
		resolve: resolveUSDate,
	},
	{
		pattern: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`),
		resolve: resolveMonthDay,
	},
	{
		pattern: regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`),
		resolve: resolveMonthDay,
	},
}

// trailingTimePattern captures "at 3", "3pm", "at 10:30 am" or "15:30" right after a date phrase.
var trailingTimePattern = regexp.MustCompile(`(?i)^\s*(at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

// Recognize scans text for date phrases and returns them in order of appearance.
// Overlapping matches are resolved in favour of the earliest, then the longest.
// Phrases without a clock time resolve to noon of their day.
func (p *Parser) Recognize(text string, ref time.Time, opts Options) []Candidate {
	ref = ref.In(p.location)

	type rawMatch struct {
		start, end int
		at         time.Time
	}

	var raws []rawMatch
	for _, m := range phraseMatchers {
		for _, idx := range m.pattern.FindAllStringSubmatchIndex(text, -1) {
			groups := submatches(text, idx)
			at, ok := m.resolve(p, groups, ref, opts)
			if !ok {
				continue
			}
			raws = append(raws, rawMatch{start: idx[0], end: idx[1], at: at})
		}
	}
	if len(raws) == 0 {
		return nil
	}

	sort.SliceStable(raws, func(i, j int) bool {
		if raws[i].start != raws[j].start {
			return raws[i].start < raws[j].start
		}
		return raws[i].end-raws[i].start > raws[j].end-raws[j].start
	})

	candidates := make([]Candidate, 0, len(raws))
	lastEnd := -1
	for _, r := range raws {
		if r.start < lastEnd {
			continue
		}

		end := r.end
		start := p.atTime(r.at, impliedHour, 0)
		hasTime := false
		if hour, minute, n, ok := trailingTime(text[end:]); ok {
			start = p.atTime(r.at, hour, minute)
			end += n
			hasTime = true
		}

		candidates = append(candidates, Candidate{
			Text:    text[r.start:end],
			Index:   r.start,
			Start:   start,
			HasTime: hasTime,
		})
		lastEnd = end
	}

	return candidates
}

func resolveRelative(p *Parser, groups []string, ref time.Time, _ Options) (time.Time, bool) {
	t, err := p.Parse(groups[0], ref)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func resolveWeekday(p *Parser, groups []string, ref time.Time, opts Options) (time.Time, bool) {
	target, ok := weekdays[strings.ToLower(groups[1])]
	if !ok {
		return time.Time{}, false
	}

	daysUntil := int(target - ref.Weekday())
	if opts.ForwardBias && daysUntil < 0 {
		daysUntil += 7
	}
	return p.startOfDay(ref.AddDate(0, 0, daysUntil)), true
}

func resolveISODate(p *Parser, groups []string, _ time.Time, _ Options) (time.Time, bool) {
	year, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])
	day, _ := strconv.Atoi(groups[3])
	return p.date(year, month, day)
}

func resolveUSDate(p *Parser, groups []string, _ time.Time, _ Options) (time.Time, bool) {
	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	year, _ := strconv.Atoi(groups[3])
	return p.date(year, month, day)
}

func resolveMonthDay(p *Parser, groups []string, ref time.Time, opts Options) (time.Time, bool) {
	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])

	t, ok := p.date(ref.Year(), month, day)
	if !ok {
		// Feb 29 may only exist next year.
		if !opts.ForwardBias {
			return time.Time{}, false
		}
		return p.date(ref.Year()+1, month, day)
	}
	if opts.ForwardBias && t.Before(p.startOfDay(ref)) {
		return p.date(ref.Year()+1, month, day)
	}
	return t, true
}

// date builds midnight of the given calendar day, rejecting days that do not exist.
func (p *Parser) date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, p.location).Day()
	if day > lastDay {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), true
}

func (p *Parser) atTime(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// trailingTime reads a clock time at the start of rest. A bare number only
// counts when introduced by "at" or followed by minutes or am/pm.
func trailingTime(rest string) (hour, minute, consumed int, ok bool) {
	idx := trailingTimePattern.FindStringSubmatchIndex(rest)
	if idx == nil {
		return 0, 0, 0, false
	}
	groups := submatches(rest, idx)
	at, minStr, meridiem := groups[1], groups[3], strings.ToLower(groups[4])
	if at == "" && minStr == "" && meridiem == "" {
		return 0, 0, 0, false
	}

	hour, _ = strconv.Atoi(groups[2])
	if minStr != "" {
		minute, _ = strconv.Atoi(minStr)
	}

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, 0, false
	}
	return hour, minute, idx[1], true
}

// submatches expands a FindStringSubmatchIndex result into strings; unmatched groups are "".
func submatches(s string, idx []int) []string {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		if idx[2*i] >= 0 {
			groups[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return groups
}
