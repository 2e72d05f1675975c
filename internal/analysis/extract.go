package analysis

import (
	"encoding/json"
	"strings"

	"primering/internal/model"
)

const (
	FallbackSummary = "분석을 완료했지만 데이터 형식을 변환하지 못했습니다."
	FallbackFlow    = "내용 분석 실패"
)

// ExtractResult decodes the JSON object spanning the first '{' to the last '}'
// of reply. An empty reply counts as "{}". When no object can be decoded it
// returns Fallback(reply) and false.
func ExtractResult(reply string) (model.AnalysisResult, bool) {
	if strings.TrimSpace(reply) == "" {
		reply = "{}"
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return Fallback(reply), false
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(reply[start:end+1]), &result); err != nil {
		return Fallback(reply), false
	}
	return result, true
}

// Fallback carries the raw reply in Tips so the user still sees something.
func Fallback(reply string) model.AnalysisResult {
	return model.AnalysisResult{
		Summary: FallbackSummary,
		Flow:    []string{FallbackFlow},
		Tips:    reply,
	}
}
