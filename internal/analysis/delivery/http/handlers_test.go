package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"primering/internal/analysis"
	"primering/internal/diary"
	"primering/internal/middleware"
	"primering/internal/model"
	"primering/pkg/datemath"
	"primering/pkg/log"
	"primering/pkg/response"
)

type mockUseCase struct {
	err   error
	got   analysis.AnalyzeInput
	gotSc model.Scope
}

func (m *mockUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	m.got, m.gotSc = input, sc
	if m.err != nil {
		return analysis.AnalyzeOutput{}, m.err
	}
	return analysis.AnalyzeOutput{
		Result:   model.AnalysisResult{Summary: "좋은 하루", Tips: "잘 자요"},
		Parsed:   true,
		Provider: "gemini",
	}, nil
}

func newRouter(uc analysis.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dates, _ := datemath.NewParser("Asia/Seoul")
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, dates), middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "OK", body: `{"content":"오늘은 바빴다","date":"2024-05-01","key":"draft"}`, wantCode: http.StatusOK},
		{name: "Missing content", body: `{"date":"2024-05-01"}`, wantCode: http.StatusBadRequest},
		{name: "Bad date", body: `{"content":"x","date":"May 1"}`, wantCode: http.StatusBadRequest},
		{name: "Superseded", body: `{"content":"x"}`, err: analysis.ErrAnalysisSuperseded, wantCode: http.StatusConflict},
		{name: "Unavailable", body: `{"content":"x"}`, err: analysis.ErrUnavailable, wantCode: http.StatusServiceUnavailable},
		{name: "Provider failure", body: `{"content":"x"}`, err: analysis.ErrAnalysisFailed, wantCode: http.StatusBadGateway},
		{name: "Unknown", body: `{"content":"x"}`, err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := post(newRouter(uc), "/api/v1/analysis", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			if uc.got.Key != "draft" || uc.got.Date.Format(time.DateOnly) != "2024-05-01" || uc.got.Date.Location().String() != "Asia/Seoul" || uc.gotSc.UserID != "alice" {
				t.Errorf("unexpected usecase input %+v scope %+v", uc.got, uc.gotSc)
			}
			var resp struct {
				response.Resp
				Data analysisResp `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Summary != "좋은 하루" || resp.Data.Flow == nil || !resp.Data.Parsed {
				t.Errorf("unexpected data %+v", resp.Data)
			}
		})
	}
}

func TestAnalyzeDiary(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantKey  string
	}{
		{name: "No body", body: "", wantCode: http.StatusOK},
		{name: "With key", body: `{"key":"tab-1"}`, wantCode: http.StatusOK, wantKey: "tab-1"},
		{name: "Not found", body: "", err: diary.ErrDiaryNotFound, wantCode: http.StatusNotFound},
		{name: "Malformed body", body: `{"key":`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := post(newRouter(uc), "/api/v1/diaries/d1/analysis", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode == http.StatusOK && (uc.got.DiaryID != "d1" || uc.got.Key != tt.wantKey) {
				t.Errorf("unexpected usecase input %+v", uc.got)
			}
		})
	}
}
