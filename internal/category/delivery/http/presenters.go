package http

import (
	"primering/internal/category"
	"primering/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
	Icon  string `json:"icon"  binding:"max=16"`
}

func (r createReq) toInput() category.CreateInput {
	return category.CreateInput{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

type updateReq struct {
	ID    string `json:"-"`
	Name  string `json:"name"  binding:"omitempty,max=100"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
	Icon  string `json:"icon"  binding:"max=16"`
	Order *int   `json:"order" binding:"omitempty,min=0"`
}

func (r updateReq) toInput() category.UpdateInput {
	return category.UpdateInput{
		ID:    r.ID,
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
		Order: r.Order,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon,omitempty"`
	UserID string `json:"user_id"`
	Order  int    `json:"order"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		ID:     c.ID,
		Name:   c.Name,
		Color:  c.Color,
		Icon:   c.Icon,
		UserID: c.UserID,
		Order:  c.Order,
	}
}

type listResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newListResp(out category.ListOutput) listResp {
	cats := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		cats[i] = newCategoryResp(c)
	}
	return listResp{Categories: cats}
}

type itemResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newItemResp(c model.Category) itemResp {
	return itemResp{Category: newCategoryResp(c)}
}
