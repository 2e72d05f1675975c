package usecase_test

import (
	"context"
	"errors"
	"testing"

	"primering/internal/category"
	"primering/internal/category/repository/blob"
	"primering/internal/category/usecase"
	"primering/internal/model"
	"primering/pkg/blobstore"
	"primering/pkg/log"
)

func newUseCase(t *testing.T) category.UseCase {
	t.Helper()
	gw, err := blobstore.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return usecase.New(blob.New(gw, log.NewNop()), log.NewNop())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	tests := []struct {
		name    string
		input   category.CreateInput
		wantErr error
	}{
		{name: "Valid", input: category.CreateInput{Name: " 가족 ", Color: "#000000"}},
		{name: "Blank name", input: category.CreateInput{Name: "   "}, wantErr: category.ErrNameRequired},
		{name: "Duplicate of default", input: category.CreateInput{Name: "업무"}, wantErr: category.ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Create(ctx, model.Scope{}, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if out.Category.Name != "가족" {
					t.Errorf("name = %q, want trimmed", out.Category.Name)
				}
				if out.Category.UserID != model.DefaultUserID {
					t.Errorf("user = %q, want default user", out.Category.UserID)
				}
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)
	order := 9

	out, err := uc.Update(ctx, model.Scope{}, category.UpdateInput{ID: "study", Icon: "🎓", Order: &order})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out.Category.Name != "학습" || out.Category.Icon != "🎓" || out.Category.Order != 9 {
		t.Errorf("partial update lost fields: %+v", out.Category)
	}

	if _, err := uc.Update(ctx, model.Scope{}, category.UpdateInput{ID: "study", Name: "미팅"}); !errors.Is(err, category.ErrDuplicateName) {
		t.Errorf("rename to existing: error = %v, want ErrDuplicateName", err)
	}
	if _, err := uc.Update(ctx, model.Scope{}, category.UpdateInput{ID: "ghost", Name: "x"}); !errors.Is(err, category.ErrCategoryNotFound) {
		t.Errorf("missing: error = %v, want ErrCategoryNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	if err := uc.Delete(ctx, model.Scope{}, "meeting"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := uc.Delete(ctx, model.Scope{}, "meeting"); !errors.Is(err, category.ErrCategoryNotFound) {
		t.Errorf("second delete: error = %v, want ErrCategoryNotFound", err)
	}

	out, err := uc.List(ctx, model.Scope{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Categories) != 3 {
		t.Errorf("got %d categories, want 3", len(out.Categories))
	}
}
