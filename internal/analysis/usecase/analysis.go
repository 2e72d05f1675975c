package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"primering/internal/analysis"
	"primering/internal/model"
	"primering/pkg/llmprovider"
)

// Analyze asks the language model for a summary of a diary entry.
// Parsed results are cached by content and date. When a newer request with
// the same key starts before this one returns, this one gets ErrAnalysisSuperseded.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	sc = model.ScopeOrDefault(sc)

	content, date, key, err := uc.resolve(ctx, sc, input)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	track := uc.track(sc, key)
	defer track.done()

	digest := cacheKey(content, date.Format(time.DateOnly))
	if cached, ok := uc.cache.Get(digest); ok {
		return analysis.AnalyzeOutput{Result: cached, Parsed: true, Cached: true}, nil
	}
	if uc.llm == nil {
		return analysis.AnalyzeOutput{}, analysis.ErrUnavailable
	}

	resp, err := uc.llm.GenerateContent(ctx, uc.request(content, date))
	current := track.current()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze GenerateContent: %v", err)
		if !current {
			return analysis.AnalyzeOutput{}, analysis.ErrAnalysisSuperseded
		}
		return analysis.AnalyzeOutput{}, fmt.Errorf("%w: %v", analysis.ErrAnalysisFailed, err)
	}

	result, parsed := analysis.ExtractResult(resp.Content.Text())
	if parsed {
		uc.cache.Add(digest, result)
	} else {
		uc.l.Warnf(ctx, "uc.Analyze: unparseable reply from %s, using fallback", resp.ProviderName)
	}

	if !current {
		uc.l.Infof(ctx, "uc.Analyze: discarding superseded reply for key %q", key)
		return analysis.AnalyzeOutput{}, analysis.ErrAnalysisSuperseded
	}

	return analysis.AnalyzeOutput{
		Result:   result,
		Parsed:   parsed,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}, nil
}

// resolve loads the diary when one is named and defaults the key and date.
func (uc *implUseCase) resolve(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (string, time.Time, string, error) {
	content, date, key := input.Content, input.Date, input.Key

	if input.DiaryID != "" {
		out, err := uc.diaries.Detail(ctx, sc, input.DiaryID)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				uc.l.Warnf(ctx, "uc.Analyze Detail %s: %v", input.DiaryID, err)
			}
			return "", time.Time{}, "", err
		}
		content, date = out.Diary.Content, out.Diary.Date
		if key == "" {
			key = "diary:" + input.DiaryID
		}
	}

	if strings.TrimSpace(content) == "" {
		return "", time.Time{}, "", analysis.ErrContentRequired
	}
	if date.IsZero() {
		date = uc.now()
	}
	return content, date, key, nil
}

func (uc *implUseCase) request(content string, date time.Time) *llmprovider.Request {
	msgs := uc.prompt.Build(content, date)
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: msgs[0].Content}}},
		Messages:          []llmprovider.Message{llmprovider.TextMessage(string(msgs[1].Role), msgs[1].Content)},
		Temperature:       uc.temperature(),
		MaxTokens:         uc.cfg.MaxTokens,
		JSONOutput:        true,
	}
}

// temperature returns a fresh copy of the configured temperature for one request.
func (uc *implUseCase) temperature() *float64 {
	t := *uc.cfg.Temperature
	return &t
}

// tracker marks one request in the generation table. Requests without a key are never superseded.
type tracker struct {
	gens *generations
	key  string
	gen  uint64
}

func (uc *implUseCase) track(sc model.Scope, key string) tracker {
	if key == "" {
		return tracker{}
	}
	k := sc.UserID + "\x00" + key
	return tracker{gens: uc.gens, key: k, gen: uc.gens.start(k)}
}

func (t tracker) current() bool {
	return t.gens == nil || t.gens.current(t.key, t.gen)
}

func (t tracker) done() {
	if t.gens != nil {
		t.gens.finish(t.key, t.gen)
	}
}

func cacheKey(content, date string) string {
	sum := sha256.Sum256([]byte(date + "\x00" + content))
	return hex.EncodeToString(sum[:])
}
