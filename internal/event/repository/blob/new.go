package blob

import (
	"fmt"
	"time"

	"primering/internal/event/repository"
	"primering/internal/model"
	"primering/pkg/blobstore"
	"primering/pkg/log"
)

// EventsBlobName is the blob holding all events.
const EventsBlobName = "events.json"

type implRepository struct {
	col *blobstore.Collection[model.Event]
	l   log.Logger
	now func() time.Time
}

// New creates an event repository backed by the blob gateway.
func New(gw blobstore.Gateway, l log.Logger) repository.Repository {
	return &implRepository{
		col: blobstore.NewCollection[model.Event](gw, EventsBlobName),
		l:   l,
		now: time.Now,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event.repository.blob.%s", method)
}
