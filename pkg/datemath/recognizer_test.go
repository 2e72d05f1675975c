package datemath_test

import (
	"testing"
	"time"

	"primering/pkg/datemath"
)

func TestRecognize(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	noon := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		text     string
		forward  bool
		wantText []string
		wantAt   []time.Time
	}{
		{
			name:     "Relative day",
			text:     "meeting tomorrow",
			forward:  true,
			wantText: []string{"tomorrow"},
			wantAt:   []time.Time{noon(2024, 5, 2)},
		},
		{
			name:     "Next weekday with time",
			text:     "lunch next friday at 1pm",
			forward:  true,
			wantText: []string{"next friday at 1pm"},
			wantAt:   []time.Time{time.Date(2024, 5, 3, 13, 0, 0, 0, time.UTC)},
		},
		{
			name:     "Bare weekday with forward bias",
			text:     "call on monday",
			forward:  true,
			wantText: []string{"on monday"},
			wantAt:   []time.Time{noon(2024, 5, 6)},
		},
		{
			name:     "Bare weekday without forward bias",
			text:     "call on monday",
			forward:  false,
			wantText: []string{"on monday"},
			wantAt:   []time.Time{noon(2024, 4, 29)},
		},
		{
			name:     "Past month/day rolls forward",
			text:     "dentist 4/15",
			forward:  true,
			wantText: []string{"4/15"},
			wantAt:   []time.Time{noon(2025, 4, 15)},
		},
		{
			name:     "Past month/day stays without bias",
			text:     "dentist 4/15",
			forward:  false,
			wantText: []string{"4/15"},
			wantAt:   []time.Time{noon(2024, 4, 15)},
		},
		{
			name:     "Korean month/day",
			text:     "마감 12월 25일",
			forward:  true,
			wantText: []string{"12월 25일"},
			wantAt:   []time.Time{noon(2024, 12, 25)},
		},
		{
			name:     "ISO date with clock time",
			text:     "report due 2024-06-01 15:30",
			forward:  true,
			wantText: []string{"2024-06-01 15:30"},
			wantAt:   []time.Time{time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)},
		},
		{
			name:     "US date",
			text:     "released 10/27/2023",
			forward:  true,
			wantText: []string{"10/27/2023"},
			wantAt:   []time.Time{noon(2023, 10, 27)},
		},
		{
			name:     "Bare number is not a time",
			text:     "tomorrow 3 people",
			forward:  true,
			wantText: []string{"tomorrow"},
			wantAt:   []time.Time{noon(2024, 5, 2)},
		},
		{
			name:     "Order of appearance",
			text:     "today and in 3 days",
			forward:  true,
			wantText: []string{"today", "in 3 days"},
			wantAt:   []time.Time{noon(2024, 5, 1), noon(2024, 5, 4)},
		},
		{
			name:     "Next weekday is not reported twice",
			text:     "next monday",
			forward:  true,
			wantText: []string{"next monday"},
			wantAt:   []time.Time{noon(2024, 5, 6)},
		},
		{
			name:    "Invalid calendar day",
			text:    "2024-02-30",
			forward: true,
		},
		{
			name:    "Clock time alone",
			text:    "standup 15:30",
			forward: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Recognize(tt.text, ref, datemath.Options{ForwardBias: tt.forward})
			if len(got) != len(tt.wantText) {
				t.Fatalf("Recognize() got %d candidates %+v, want %d", len(got), got, len(tt.wantText))
			}
			for i, c := range got {
				if c.Text != tt.wantText[i] {
					t.Errorf("candidate %d text = %q, want %q", i, c.Text, tt.wantText[i])
				}
				if !c.Start.Equal(tt.wantAt[i]) {
					t.Errorf("candidate %d start = %v, want %v", i, c.Start, tt.wantAt[i])
				}
				if tt.text[c.Index:c.End()] != c.Text {
					t.Errorf("candidate %d index %d does not point at %q", i, c.Index, c.Text)
				}
			}
		})
	}
}

func TestRecognizeUsesParserLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	// 2024-05-01 23:00 UTC is already May 2 in Seoul.
	ref := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)

	got := parser.Recognize("tomorrow", ref, datemath.Options{ForwardBias: true})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	want := time.Date(2024, 5, 3, 12, 0, 0, 0, parser.Location())
	if !got[0].Start.Equal(want) {
		t.Errorf("got %v, want %v", got[0].Start, want)
	}
}
