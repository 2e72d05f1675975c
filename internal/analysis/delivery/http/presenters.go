package http

import (
	"time"

	"primering/internal/analysis"
)

// --- Request DTOs ---

type analyzeReq struct {
	Content string `json:"content" binding:"required,max=20000"`
	Date    string `json:"date"`
	Key     string `json:"key"     binding:"max=100"`

	date time.Time
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Content: r.Content,
		Date:    r.date,
		Key:     r.Key,
	}
}

type analyzeDiaryReq struct {
	Key string `json:"key" binding:"max=100"`
}

// --- Response DTOs ---

type analysisResp struct {
	Summary  string   `json:"summary"`
	Flow     []string `json:"flow"`
	Tips     string   `json:"tips"`
	Parsed   bool     `json:"parsed"`
	Cached   bool     `json:"cached"`
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
}

func (h *handler) newAnalysisResp(o analysis.AnalyzeOutput) analysisResp {
	flow := o.Result.Flow
	if flow == nil {
		flow = []string{}
	}
	return analysisResp{
		Summary:  o.Result.Summary,
		Flow:     flow,
		Tips:     o.Result.Tips,
		Parsed:   o.Parsed,
		Cached:   o.Cached,
		Provider: o.Provider,
		Model:    o.Model,
	}
}
