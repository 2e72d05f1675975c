package quickentry_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"primering/internal/model"
	"primering/internal/quickentry"
	"primering/pkg/datemath"
)

func newKoreanParser(t *testing.T) (*quickentry.Parser, *time.Location) {
	t.Helper()
	recognizer, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	p, err := quickentry.NewParser(quickentry.Korean(), recognizer)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p, recognizer.Location()
}

func TestParse_Korean(t *testing.T) {
	p, seoul := newKoreanParser(t)
	now := time.Date(2024, 5, 1, 15, 30, 45, 123000000, seoul) // Wednesday
	categories := model.DefaultCategories(model.DefaultUserID)
	at := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2024, month, day, hour, minute, 0, 0, seoul)
	}

	tests := []struct {
		name         string
		input        string
		wantDate     time.Time
		wantTitle    string
		wantCategory string
	}{
		{
			name:         "Tomorrow afternoon",
			input:        "내일 오후 2시 회의",
			wantDate:     at(5, 2, 14, 0),
			wantTitle:    "회의",
			wantCategory: "work",
		},
		{
			name:         "Tomorrow defaults to nine",
			input:        "내일 디자인 리뷰",
			wantDate:     at(5, 2, 9, 0),
			wantTitle:    "디자인 리뷰",
			wantCategory: "work",
		},
		{
			name:         "Colon time is not adjusted without PM marker",
			input:        "오늘 15:30 스탠드업",
			wantDate:     at(5, 1, 15, 30),
			wantTitle:    "스탠드업",
			wantCategory: "work",
		},
		{
			name:         "Hour and minute",
			input:        "내일 3시 30분 치과",
			wantDate:     at(5, 2, 3, 30),
			wantTitle:    "치과",
			wantCategory: "work",
		},
		{
			name:         "PM at twelve stays noon",
			input:        "오늘 오후 12시 점심",
			wantDate:     at(5, 1, 12, 0),
			wantTitle:    "점심",
			wantCategory: "work",
		},
		{
			name:         "First day marker in table order wins",
			input:        "오늘 말고 내일",
			wantDate:     at(5, 2, 9, 0),
			wantTitle:    "말고",
			wantCategory: "work",
		},
		{
			name:         "Non-adjacent PM marker still shifts the hour",
			input:        "오후 회의 내일 2시",
			wantDate:     at(5, 2, 14, 0),
			wantTitle:    "오후 회의",
			wantCategory: "work",
		},
		{
			name:         "Overflowing hour rolls into the next day",
			input:        "내일 25시 야근",
			wantDate:     at(5, 3, 1, 0),
			wantTitle:    "야근",
			wantCategory: "work",
		},
		{
			name:         "Only markers leaves placeholder title",
			input:        "내일 오후 3시",
			wantDate:     at(5, 2, 15, 0),
			wantTitle:    "새로운 일정",
			wantCategory: "work",
		},
		{
			name:         "Category by list order, not position",
			input:        "내일 미팅 전에 학습 자료 정리",
			wantDate:     at(5, 2, 9, 0),
			wantTitle:    "미팅 전에 학습 자료 정리",
			wantCategory: "meeting",
		},
		{
			name:         "Earlier category wins over earlier position",
			input:        "내일 미팅 업무 정리",
			wantDate:     at(5, 2, 9, 0),
			wantTitle:    "미팅 업무 정리",
			wantCategory: "work",
		},
		{
			name:         "Recognizer path keeps its instant",
			input:        "tomorrow 발표 준비",
			wantDate:     at(5, 2, 12, 0),
			wantTitle:    "발표 준비",
			wantCategory: "work",
		},
		{
			name:         "Recognizer date with explicit time",
			input:        "12월 25일 오후 7시 개인 파티",
			wantDate:     at(12, 25, 19, 0),
			wantTitle:    "개인 파티",
			wantCategory: "personal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parse(tt.input, categories, now)
			if !ok {
				t.Fatalf("Parse(%q) returned no result", tt.input)
			}
			if !got.Date.Equal(tt.wantDate) {
				t.Errorf("date = %v, want %v", got.Date, tt.wantDate)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.CategoryID != tt.wantCategory {
				t.Errorf("category = %q, want %q", got.CategoryID, tt.wantCategory)
			}
		})
	}
}

func TestParse_Absent(t *testing.T) {
	p, seoul := newKoreanParser(t)
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, seoul)
	categories := model.DefaultCategories(model.DefaultUserID)

	for _, input := range []string{"", "   \t\n", "오후 3시 회의", "15:30 회의", "그냥 메모"} {
		if got, ok := p.Parse(input, categories, now); ok {
			t.Errorf("Parse(%q) = %+v, want absent", input, got)
		}
	}
}

func TestParse_TomorrowAlwaysNineAM(t *testing.T) {
	p, seoul := newKoreanParser(t)
	inputs := []string{"내일", "내일 회의", "회의 내일", "  내일   장보기  ", "내일은 휴가"}
	nows := []time.Time{
		time.Date(2024, 1, 31, 23, 59, 59, 999, seoul),
		time.Date(2024, 2, 28, 0, 0, 0, 0, seoul),
		time.Date(2024, 12, 31, 12, 0, 0, 0, seoul),
	}

	for _, now := range nows {
		for _, input := range inputs {
			got, ok := p.Parse(input, nil, now)
			if !ok {
				t.Fatalf("Parse(%q) returned no result", input)
			}
			want := time.Date(now.Year(), now.Month(), now.Day()+1, 9, 0, 0, 0, seoul)
			if !got.Date.Equal(want) {
				t.Errorf("Parse(%q) at %v = %v, want %v", input, now, got.Date, want)
			}
		}
	}
}

func TestParse_NoCategories(t *testing.T) {
	p, seoul := newKoreanParser(t)
	got, ok := p.Parse("내일 회의", nil, time.Date(2024, 5, 1, 0, 0, 0, 0, seoul))
	if !ok {
		t.Fatal("expected a result")
	}
	if got.CategoryID != "" {
		t.Errorf("category = %q, want empty", got.CategoryID)
	}
}

func TestParse_Idempotent(t *testing.T) {
	p, seoul := newKoreanParser(t)
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, seoul)
	categories := model.DefaultCategories(model.DefaultUserID)

	for _, input := range []string{"내일 오후 2시 회의", "12월 25일 파티", "next friday at 3pm 학습"} {
		first, ok1 := p.Parse(input, categories, now)
		second, ok2 := p.Parse(input, categories, now)
		if ok1 != ok2 || first != second {
			t.Errorf("Parse(%q) not idempotent: %+v vs %+v", input, first, second)
		}
	}
}

func TestParse_WithoutRecognizer(t *testing.T) {
	p, err := quickentry.NewParser(quickentry.Korean(), nil)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	if _, ok := p.Parse("tomorrow 회의", nil, now); ok {
		t.Error("expected absent without a recognizer")
	}
	if _, ok := p.Parse("내일 회의", nil, now); !ok {
		t.Error("day marker should resolve without a recognizer")
	}
}

func TestParse_English(t *testing.T) {
	recognizer, _ := datemath.NewParser("UTC")
	p, err := quickentry.NewParser(quickentry.English(), recognizer)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	categories := []model.Category{{ID: "w", Name: "Work"}, {ID: "g", Name: "Gym"}}

	tests := []struct {
		input        string
		wantDate     time.Time
		wantTitle    string
		wantCategory string
	}{
		{"Lunch Tomorrow at 12:30pm", time.Date(2024, 5, 2, 12, 30, 0, 0, time.UTC), "Lunch", "w"},
		{"Gym today 7pm", time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC), "Gym", "g"},
		{"tomorrow 12am deploy", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), "deploy", "w"},
		{"day after tomorrow offsite", time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC), "offsite", "w"},
		{"dinner next friday 7pm", time.Date(2024, 5, 3, 19, 0, 0, 0, time.UTC), "dinner", "w"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := p.Parse(tt.input, categories, now)
			if !ok {
				t.Fatalf("Parse(%q) returned no result", tt.input)
			}
			if !got.Date.Equal(tt.wantDate) {
				t.Errorf("date = %v, want %v", got.Date, tt.wantDate)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.CategoryID != tt.wantCategory {
				t.Errorf("category = %q, want %q", got.CategoryID, tt.wantCategory)
			}
		})
	}
}

func TestLocales(t *testing.T) {
	if _, err := quickentry.LocaleByName("klingon"); !errors.Is(err, quickentry.ErrUnknownLocale) {
		t.Errorf("LocaleByName(klingon) error = %v, want ErrUnknownLocale", err)
	}
	loc, err := quickentry.LocaleByName("EN")
	if err != nil || loc.Name != quickentry.LocaleEnglish {
		t.Errorf("LocaleByName(EN) = %q, %v", loc.Name, err)
	}

	bad := quickentry.Korean()
	bad.TimePatterns = []string{`(\d+)h`}
	if _, err := quickentry.NewParser(bad, nil); !errors.Is(err, quickentry.ErrInvalidLocale) {
		t.Errorf("pattern without hour group: error = %v, want ErrInvalidLocale", err)
	}

	bad = quickentry.Korean()
	bad.DefaultTime = "9am"
	if _, err := quickentry.NewParser(bad, nil); !errors.Is(err, quickentry.ErrInvalidLocale) {
		t.Errorf("bad default time: error = %v, want ErrInvalidLocale", err)
	}
}

func TestLoadLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale.yaml")
	body := `
name: ko-custom
day_markers:
  - {token: 모레, offset: 2}
  - {token: 내일, offset: 1}
time_patterns:
  - '(?P<hour>\d{1,2})시'
pm_pattern: 오후
default_time: "10:00"
placeholder: 제목 없음
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loc, err := quickentry.LoadLocale(path)
	if err != nil {
		t.Fatalf("LoadLocale: %v", err)
	}
	p, err := quickentry.NewParser(loc, nil)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	got, ok := p.Parse("모레", nil, now)
	if !ok {
		t.Fatal("expected a result")
	}
	if want := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC); !got.Date.Equal(want) {
		t.Errorf("date = %v, want %v", got.Date, want)
	}
	if got.Title != "제목 없음" {
		t.Errorf("title = %q, want placeholder", got.Title)
	}
}
