package analysis_test

import (
	"reflect"
	"testing"

	"primering/internal/analysis"
	"primering/internal/model"
)

func TestExtractResult(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		want       model.AnalysisResult
		wantParsed bool
	}{
		{
			name:       "Bare JSON",
			reply:      `{"summary":"좋은 하루","flow":["출근","회의"],"tips":"푹 쉬세요"}`,
			want:       model.AnalysisResult{Summary: "좋은 하루", Flow: []string{"출근", "회의"}, Tips: "푹 쉬세요"},
			wantParsed: true,
		},
		{
			name:       "Chatter around JSON",
			reply:      "Sure! Here it is:\n```json\n{\"summary\":\"s\",\"flow\":[],\"tips\":\"t\"}\n```",
			want:       model.AnalysisResult{Summary: "s", Flow: []string{}, Tips: "t"},
			wantParsed: true,
		},
		{
			name:       "Empty reply is an empty object",
			reply:      "",
			want:       model.AnalysisResult{},
			wantParsed: true,
		},
		{
			name:  "No braces",
			reply: "I cannot help with that.",
			want:  analysis.Fallback("I cannot help with that."),
		},
		{
			name:  "Broken JSON",
			reply: `{"summary": "cut off`,
			want:  analysis.Fallback(`{"summary": "cut off`),
		},
		{
			name:  "Wrong field type",
			reply: `{"summary":"s","flow":"not a list","tips":"t"}`,
			want:  analysis.Fallback(`{"summary":"s","flow":"not a list","tips":"t"}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, parsed := analysis.ExtractResult(tt.reply)
			if parsed != tt.wantParsed {
				t.Errorf("parsed = %v, want %v", parsed, tt.wantParsed)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractResult() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	f := analysis.Fallback("raw")
	if f.Summary != analysis.FallbackSummary || len(f.Flow) != 1 || f.Flow[0] != analysis.FallbackFlow || f.Tips != "raw" {
		t.Errorf("unexpected fallback %+v", f)
	}
}
