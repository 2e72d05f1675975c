package quickentry

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"primering/internal/model"
	"primering/pkg/datemath"
)

// DateRecognizer finds date phrases in free text.
type DateRecognizer interface {
	Recognize(text string, ref time.Time, opts datemath.Options) []datemath.Candidate
}

// Parser turns free text into an event draft. It holds no mutable state and
// is safe for concurrent use.
type Parser struct {
	locale     compiledLocale
	recognizer DateRecognizer
}

// NewParser builds a parser for locale. recognizer may be nil, in which case
// only day markers resolve a date.
func NewParser(locale Locale, recognizer DateRecognizer) (*Parser, error) {
	compiled, err := locale.compile()
	if err != nil {
		return nil, err
	}
	return &Parser{locale: compiled, recognizer: recognizer}, nil
}

type span struct{ start, end int }

type clockMatch struct {
	hour, minute int
	span         span
}

// Parse resolves input against now. The second result is false when no date
// could be found, in which case no draft should be offered.
func (p *Parser) Parse(input string, categories []model.Category, now time.Time) (ParseResult, bool) {
	if strings.TrimSpace(input) == "" {
		return ParseResult{}, false
	}

	loc := now.Location()
	clock, hasClock := p.findClock(input)
	removals := make([]span, 0, 4)

	var date time.Time
	if offset, ok := p.findDayMarker(input); ok {
		day := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, loc)
		if hasClock {
			date = p.applyClock(day, clock, input)
		} else {
			date = time.Date(day.Year(), day.Month(), day.Day(), p.locale.defaultHour, p.locale.defaultMinute, 0, 0, loc)
		}
	} else {
		cand, ok := p.recognize(input, now)
		if !ok {
			return ParseResult{}, false
		}
		date = cand.Start.In(loc)
		if hasClock {
			date = p.applyClock(date, clock, input)
		}
		removals = append(removals, span{cand.Index, cand.End()})
	}

	if hasClock {
		removals = append(removals, p.pmAdjacent(input, clock.span)...)
		removals = append(removals, clock.span)
	}

	return ParseResult{
		Date:       date,
		Title:      p.title(input, removals),
		CategoryID: detectCategory(input, categories),
	}, true
}

func (p *Parser) findDayMarker(input string) (int, bool) {
	for _, m := range p.locale.dayMarkers {
		if m.re.MatchString(input) {
			return m.offset, true
		}
	}
	return 0, false
}

func (p *Parser) findClock(input string) (clockMatch, bool) {
	for _, tp := range p.locale.timePatterns {
		idx := tp.re.FindStringSubmatchIndex(input)
		if idx == nil {
			continue
		}

		hour, _ := strconv.Atoi(input[idx[2*tp.hour]:idx[2*tp.hour+1]])
		minute := 0
		if tp.minute >= 0 && idx[2*tp.minute] >= 0 {
			minute, _ = strconv.Atoi(input[idx[2*tp.minute]:idx[2*tp.minute+1]])
		}
		return clockMatch{hour: hour, minute: minute, span: span{idx[0], idx[1]}}, true
	}
	return clockMatch{}, false
}

// applyClock sets the explicit clock time on day, zeroing seconds.
// Out-of-range values roll over the way time.Date normalizes them.
func (p *Parser) applyClock(day time.Time, c clockMatch, input string) time.Time {
	hour := c.hour
	if p.locale.pm != nil && p.locale.pm.MatchString(input) && hour < 12 {
		hour += 12
	} else if p.locale.am != nil && p.locale.am.MatchString(input) && hour == 12 {
		hour = 0
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, c.minute, 0, 0, day.Location())
}

func (p *Parser) recognize(input string, now time.Time) (datemath.Candidate, bool) {
	if p.recognizer == nil {
		return datemath.Candidate{}, false
	}
	cands := p.recognizer.Recognize(input, now, datemath.Options{ForwardBias: true})
	if len(cands) == 0 {
		return datemath.Candidate{}, false
	}
	return cands[0], true
}

// pmAdjacent returns PM marker spans that touch the clock phrase, separated
// from it by whitespace at most.
func (p *Parser) pmAdjacent(input string, clock span) []span {
	if p.locale.pm == nil {
		return nil
	}

	var out []span
	for _, idx := range p.locale.pm.FindAllStringIndex(input, -1) {
		s := span{idx[0], idx[1]}
		switch {
		case s.end <= clock.start && isBlank(input[s.end:clock.start]):
			out = append(out, s)
		case s.start >= clock.end && isBlank(input[clock.end:s.start]):
			out = append(out, s)
		case s.start < clock.end && s.end > clock.start:
			out = append(out, s)
		}
	}
	return out
}

// title removes the given spans and every day marker, collapsing whitespace.
func (p *Parser) title(input string, removals []span) string {
	sort.Slice(removals, func(i, j int) bool { return removals[i].start < removals[j].start })

	var b strings.Builder
	pos := 0
	for _, r := range removals {
		if r.start > pos {
			b.WriteString(input[pos:r.start])
			b.WriteByte(' ')
		}
		if r.end > pos {
			pos = r.end
		}
	}
	b.WriteString(input[pos:])

	out := b.String()
	for _, m := range p.locale.dayMarkers {
		out = m.re.ReplaceAllString(out, " ")
	}

	out = strings.Join(strings.Fields(out), " ")
	if out == "" {
		return p.locale.placeholder
	}
	return out
}

// detectCategory returns the first category, in list order, whose name occurs
// in input. Without a match it falls back to the first category.
func detectCategory(input string, categories []model.Category) string {
	if len(categories) == 0 {
		return ""
	}
	for _, c := range categories {
		if c.Name != "" && strings.Contains(input, c.Name) {
			return c.ID
		}
	}
	return categories[0].ID
}

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
