package queries

import (
	"context"
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/user"
	"fitbook/internal/infra"
	"fitbook/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	DefaultBookingPageSize = 20
	MaxBookingPageSize     = 100
)

type BookingView struct {
	ID                     uuid.UUID  `json:"id"`
	CoachID                uuid.UUID  `json:"coach_id"`
	CoachUserID            uuid.UUID  `json:"coach_user_id"`
	CoachName              string     `json:"coach_name"`
	ClientID               uuid.UUID  `json:"client_id"`
	PackageID              uuid.UUID  `json:"package_id"`
	PackageName            string     `json:"package_name"`
	PackageDurationMinutes int        `json:"package_duration_minutes"`
	StartTime              time.Time  `json:"start_time"`
	EndTime                time.Time  `json:"end_time"`
	Status                 string     `json:"status"`
	TotalAmount            int64      `json:"total_amount"`
	PlatformFee            int64      `json:"platform_fee"`
	CoachPayout            int64      `json:"coach_payout"`
	Currency               string     `json:"currency"`
	CancelledAt            *time.Time `json:"cancelled_at,omitempty"`
	CancelReason           *string    `json:"cancel_reason,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// BookingFilters are the caller-facing list options. Page is 1-based.
type BookingFilters struct {
	Statuses []string
	Upcoming bool
	Page     int
	Limit    int
}

type BookingPage struct {
	Items []*BookingView
	Total int64
	Page  int
	Limit int
}

// BookingListCriteria is what the read store filters on.
type BookingListCriteria struct {
	ClientID   *uuid.UUID
	CoachID    *uuid.UUID
	Statuses   []string
	StartsFrom *time.Time
	Limit      int32
	Offset     int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, criteria BookingListCriteria) ([]*BookingView, int64, error)
	FindCoachIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error)
	ListForClient(ctx context.Context, actor user.Actor, filters BookingFilters) (*BookingPage, error)
	ListForCoach(ctx context.Context, actor user.Actor, filters BookingFilters) (*BookingPage, error)
}

type bookingQueriesImpl struct {
	repo  BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(repo BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor user.Actor) (*BookingView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID() != v.ClientID && actor.ID() != v.CoachUserID {
		return nil, ErrBookingAccess
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListForClient(ctx context.Context, actor user.Actor, filters BookingFilters) (*BookingPage, error) {
	if actor.IsZero() {
		return nil, ErrBookingAccess
	}
	clientID := actor.ID()
	return q.list(ctx, BookingListCriteria{ClientID: &clientID}, filters)
}

func (q *bookingQueriesImpl) ListForCoach(ctx context.Context, actor user.Actor, filters BookingFilters) (*BookingPage, error) {
	if actor.Role() != user.RoleCoach {
		return nil, ErrBookingAccess
	}
	coachID, err := q.repo.FindCoachIDByUser(ctx, actor.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCoachProfileNotFound
		}
		return nil, err
	}
	return q.list(ctx, BookingListCriteria{CoachID: &coachID}, filters)
}

func (q *bookingQueriesImpl) list(ctx context.Context, criteria BookingListCriteria, filters BookingFilters) (*BookingPage, error) {
	for _, s := range filters.Statuses {
		if !booking.Status(s).IsValid() {
			return nil, ErrInvalidStatusFilter
		}
	}

	page, limit := NormalizePage(filters.Page, filters.Limit)
	criteria.Statuses = filters.Statuses
	criteria.Limit = int32(limit)
	criteria.Offset = int32((page - 1) * limit)
	if filters.Upcoming {
		now := q.clock.Now()
		criteria.StartsFrom = &now
	}

	items, total, err := q.repo.List(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return &BookingPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// NormalizePage clamps page/limit to the booking list defaults.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit <= 0:
		limit = DefaultBookingPageSize
	case limit > MaxBookingPageSize:
		limit = MaxBookingPageSize
	}
	return page, limit
}
