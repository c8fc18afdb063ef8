package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MaxAvailabilityWindow bounds a single availability query.
const MaxAvailabilityWindow = 31 * 24 * time.Hour

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityView struct {
	CoachID uuid.UUID   `json:"coach_id"`
	Start   time.Time   `json:"start"`
	End     time.Time   `json:"end"`
	Free    bool        `json:"free"`
	Busy    []TimeRange `json:"busy"`
}

type AvailabilityReadStore interface {
	// ListBusy returns the half-open ranges held by non-terminal bookings that overlap [start, end).
	ListBusy(ctx context.Context, coachID uuid.UUID, start, end time.Time) ([]TimeRange, error)
}

type AvailabilityQueries interface {
	CheckWindow(ctx context.Context, coachID uuid.UUID, start, end time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	repo AvailabilityReadStore
}

func NewAvailabilityQueries(repo AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) CheckWindow(ctx context.Context, coachID uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	if !end.After(start) || end.Sub(start) > MaxAvailabilityWindow {
		return nil, ErrInvalidWindow
	}
	busy, err := q.repo.ListBusy(ctx, coachID, start, end)
	if err != nil {
		return nil, err
	}
	if busy == nil {
		busy = []TimeRange{}
	}
	return &AvailabilityView{
		CoachID: coachID,
		Start:   start,
		End:     end,
		Free:    len(busy) == 0,
		Busy:    busy,
	}, nil
}
