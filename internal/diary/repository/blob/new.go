package blob

import (
	"fmt"
	"time"

	"primering/internal/diary/repository"
	"primering/internal/model"
	"primering/pkg/blobstore"
	"primering/pkg/log"
)

// DiariesBlobName is the blob holding all diary entries.
const DiariesBlobName = "diaries.json"

type implRepository struct {
	col *blobstore.Collection[model.Diary]
	l   log.Logger
	now func() time.Time
}

// New creates a diary repository backed by the blob gateway.
func New(gw blobstore.Gateway, l log.Logger) repository.Repository {
	return &implRepository{
		col: blobstore.NewCollection[model.Diary](gw, DiariesBlobName),
		l:   l,
		now: time.Now,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("diary.repository.blob.%s", method)
}
