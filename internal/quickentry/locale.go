package quickentry

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Locale isolates the language-specific tokens the parser matches on.
type Locale struct {
	Name string `yaml:"name"`

	// DayMarkers are literal tokens naming a day relative to now. When several
	// occur in the input, the first one in table order wins.
	DayMarkers []DayMarker `yaml:"day_markers"`

	// TimePatterns are tried in order. Each must define a named group "hour"
	// and may define "minute".
	TimePatterns []string `yaml:"time_patterns"`

	// PMPattern marks afternoon times: hour += 12 when hour < 12.
	PMPattern string `yaml:"pm_pattern"`
	// AMPattern, when set, maps 12 o'clock to 0.
	AMPattern string `yaml:"am_pattern,omitempty"`

	// DefaultTime ("15:04") applies when a day marker matched but no time did.
	DefaultTime string `yaml:"default_time"`

	// Placeholder replaces an empty title.
	Placeholder string `yaml:"placeholder"`

	IgnoreCase bool `yaml:"ignore_case"`
}

// DayMarker is a token resolving to now plus Offset days.
type DayMarker struct {
	Token  string `yaml:"token"`
	Offset int    `yaml:"offset"`
}

const (
	LocaleKorean  = "ko"
	LocaleEnglish = "en"
)

// Korean returns the built-in Korean table.
func Korean() Locale {
	return Locale{
		Name: LocaleKorean,
		DayMarkers: []DayMarker{
			{Token: "내일", Offset: 1},
			{Token: "오늘", Offset: 0},
		},
		TimePatterns: []string{
			`(?P<hour>\d{1,2})시(?:\s*(?P<minute>\d{1,2})분)?`,
			`(?P<hour>\d{1,2}):(?P<minute>\d{2})`,
		},
		PMPattern:   `오후`,
		DefaultTime: "09:00",
		Placeholder: "새로운 일정",
	}
}

// English returns the built-in English table.
func English() Locale {
	return Locale{
		Name: LocaleEnglish,
		DayMarkers: []DayMarker{
			{Token: "day after tomorrow", Offset: 2},
			{Token: "tomorrow", Offset: 1},
			{Token: "today", Offset: 0},
			{Token: "tonight", Offset: 0},
		},
		TimePatterns: []string{
			`(?:\bat\s+)?\b(?P<hour>\d{1,2}):(?P<minute>\d{2})(?:\s*[ap]\.?m\b\.?)?`,
			`(?:\bat\s+)?\b(?P<hour>\d{1,2})\s*(?:[ap]\.?m\b\.?|o'clock)`,
		},
		PMPattern:   `(?:\d|\b)\s*p\.?m\b`,
		AMPattern:   `(?:\d|\b)\s*a\.?m\b`,
		DefaultTime: "09:00",
		Placeholder: "New event",
		IgnoreCase:  true,
	}
}

// LocaleByName returns a built-in locale.
func LocaleByName(name string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LocaleKorean, "korean":
		return Korean(), nil
	case LocaleEnglish, "english":
		return English(), nil
	}
	return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
}

// LoadLocale reads a locale table from a YAML file.
func LoadLocale(path string) (Locale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Locale{}, fmt.Errorf("read locale file: %w", err)
	}

	var loc Locale
	if err := yaml.Unmarshal(data, &loc); err != nil {
		return Locale{}, fmt.Errorf("decode locale file %s: %w", path, err)
	}
	if _, err := loc.compile(); err != nil {
		return Locale{}, err
	}
	return loc, nil
}

type timePattern struct {
	re     *regexp.Regexp
	hour   int
	minute int // -1 when the pattern has no minute group
}

type dayMarker struct {
	re     *regexp.Regexp
	offset int
}

// compiledLocale is a Locale with every pattern compiled.
type compiledLocale struct {
	dayMarkers    []dayMarker
	timePatterns  []timePattern
	pm            *regexp.Regexp
	am            *regexp.Regexp
	defaultHour   int
	defaultMinute int
	placeholder   string
}

func (l Locale) compile() (compiledLocale, error) {
	prefix := ""
	if l.IgnoreCase {
		prefix = "(?i)"
	}

	c := compiledLocale{placeholder: l.Placeholder}
	if c.placeholder == "" {
		return compiledLocale{}, fmt.Errorf("%w: placeholder is required", ErrInvalidLocale)
	}

	for _, m := range l.DayMarkers {
		if m.Token == "" {
			return compiledLocale{}, fmt.Errorf("%w: empty day marker", ErrInvalidLocale)
		}
		c.dayMarkers = append(c.dayMarkers, dayMarker{
			re:     regexp.MustCompile(prefix + regexp.QuoteMeta(m.Token)),
			offset: m.Offset,
		})
	}

	for _, p := range l.TimePatterns {
		re, err := regexp.Compile(prefix + p)
		if err != nil {
			return compiledLocale{}, fmt.Errorf("%w: time pattern %q: %v", ErrInvalidLocale, p, err)
		}
		tp := timePattern{re: re, hour: re.SubexpIndex("hour"), minute: re.SubexpIndex("minute")}
		if tp.hour < 0 {
			return compiledLocale{}, fmt.Errorf("%w: time pattern %q has no hour group", ErrInvalidLocale, p)
		}
		c.timePatterns = append(c.timePatterns, tp)
	}

	var err error
	if c.pm, err = compileOptional(prefix, l.PMPattern); err != nil {
		return compiledLocale{}, err
	}
	if c.am, err = compileOptional(prefix, l.AMPattern); err != nil {
		return compiledLocale{}, err
	}

	c.defaultHour, c.defaultMinute, err = parseClock(l.DefaultTime)
	if err != nil {
		return compiledLocale{}, err
	}
	return c, nil
}

func compileOptional(prefix, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(prefix + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidLocale, pattern, err)
	}
	return re, nil
}

// parseClock reads "HH:MM"; an empty string means 09:00.
func parseClock(s string) (hour, minute int, err error) {
	if s == "" {
		return 9, 0, nil
	}
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: default time %q is not HH:MM", ErrInvalidLocale, s)
	}
	hour, errH := strconv.Atoi(h)
	minute, errM := strconv.Atoi(m)
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: default time %q is not HH:MM", ErrInvalidLocale, s)
	}
	return hour, minute, nil
}
