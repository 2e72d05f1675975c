package http

import (
	"time"

	"primering/internal/diary"
	"primering/internal/model"
	"primering/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Date    *time.Time `json:"date"`
	Title   string     `json:"title"   binding:"required,max=200"`
	Content string     `json:"content" binding:"required,max=20000"`
	Mood    string     `json:"mood"    binding:"omitempty,oneof=happy neutral sad excited angry"`
	Weather string     `json:"weather" binding:"max=50"`
}

func (r createReq) toInput() diary.CreateInput {
	input := diary.CreateInput{
		Title:   r.Title,
		Content: r.Content,
		Mood:    model.Mood(r.Mood),
		Weather: r.Weather,
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

type listReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type updateReq struct {
	ID      string     `json:"-"`
	Date    *time.Time `json:"date"`
	Title   string     `json:"title"   binding:"max=200"`
	Content string     `json:"content" binding:"max=20000"`
	Mood    string     `json:"mood"    binding:"omitempty,oneof=happy neutral sad excited angry"`
	Weather *string    `json:"weather" binding:"omitempty,max=50"`
}

func (r updateReq) toInput() diary.UpdateInput {
	return diary.UpdateInput{
		ID:      r.ID,
		Date:    r.Date,
		Title:   r.Title,
		Content: r.Content,
		Mood:    model.Mood(r.Mood),
		Weather: r.Weather,
	}
}

// --- Response DTOs ---

type diaryResp struct {
	ID        string            `json:"id"`
	Date      response.Date     `json:"date"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Mood      string            `json:"mood"`
	Weather   string            `json:"weather,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newDiaryResp(d model.Diary) diaryResp {
	return diaryResp{
		ID:        d.ID,
		Date:      response.Date(d.Date),
		Title:     d.Title,
		Content:   d.Content,
		Mood:      string(d.Mood),
		Weather:   d.Weather,
		CreatedAt: response.DateTime(d.CreatedAt),
		UpdatedAt: response.DateTime(d.UpdatedAt),
	}
}

type listResp struct {
	Diaries []diaryResp `json:"diaries"`
}

func (h *handler) newListResp(out diary.ListOutput) listResp {
	diaries := make([]diaryResp, len(out.Diaries))
	for i, d := range out.Diaries {
		diaries[i] = newDiaryResp(d)
	}
	return listResp{Diaries: diaries}
}

type itemResp struct {
	Diary diaryResp `json:"diary"`
}

func (h *handler) newItemResp(d model.Diary) itemResp {
	return itemResp{Diary: newDiaryResp(d)}
}
