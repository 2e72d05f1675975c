package blob

import (
	"fmt"

	"primering/internal/category/repository"
	"primering/internal/model"
	"primering/pkg/blobstore"
	"primering/pkg/log"
)

// CategoriesBlobName is the blob holding the category list.
const CategoriesBlobName = "categories.json"

type implRepository struct {
	col *blobstore.Collection[model.Category]
	l   log.Logger
}

// New creates a category repository backed by the blob gateway.
func New(gw blobstore.Gateway, l log.Logger) repository.Repository {
	return &implRepository{
		col: blobstore.NewCollection[model.Category](gw, CategoriesBlobName),
		l:   l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("category.repository.blob.%s", method)
}
