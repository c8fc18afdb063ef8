package shared

import (
	"context"
	"time"

	"fitbook/internal/domain/booking"
	"fitbook/internal/domain/payment"
	"fitbook/internal/domain/review"
	"fitbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Coaches() CoachRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Notifications() NotificationRepository
	GatewayEvents() GatewayEventRepository
	Reads() CommandReads
	DB() db.DBTX
	// BestEffort runs fn inside a savepoint. A failure rolls back fn's writes
	// only and is returned for logging; the enclosing transaction stays usable.
	BestEffort(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type CommandReads interface {
	CoachByID(ctx context.Context, id uuid.UUID) (*CoachSnapshot, error)
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	LockByAuthorizationRef(ctx context.Context, tx db.DBTX, ref string) (*booking.Booking, error)
	// LockUnauthorized returns the client's own PENDING_PAYMENT booking for the
	// same package and slot that never got an authorization reference.
	LockUnauthorized(ctx context.Context, tx db.DBTX, clientID, coachID, packageID uuid.UUID, slot booking.TimeSlot) (*booking.Booking, error)
	HasOverlap(ctx context.Context, tx db.DBTX, coachID uuid.UUID, slot booking.TimeSlot, excludeID *uuid.UUID) (bool, error)
	// UpdateStatus writes b's status only if the stored status is still one of from.
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking, from []booking.Status) (bool, error)
	UpdateSlot(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	// SetAuthorizationRef never overwrites a different existing reference.
	SetAuthorizationRef(ctx context.Context, tx db.DBTX, id uuid.UUID, ref string) (bool, error)
}

type PaymentRepository interface {
	// Insert returns false when a row with the same authorization reference already exists.
	Insert(ctx context.Context, tx db.DBTX, p *payment.Payment) (bool, error)
	LockByAuthorizationRef(ctx context.Context, tx db.DBTX, ref string) (*payment.Payment, error)
	LockSucceededByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, p *payment.Payment) error
}

type CoachRepository interface {
	// SetPaymentEnabled writes only when the flag differs and reports whether it did.
	SetPaymentEnabled(ctx context.Context, tx db.DBTX, accountID string, enabled bool) (bool, error)
	RecalcSessionsCompleted(ctx context.Context, tx db.DBTX, coachID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) error
}

type RatingStatsRepository interface {
	RecalcCoachRatingStats(ctx context.Context, tx db.DBTX, coachID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type GatewayEventRepository interface {
	Record(ctx context.Context, tx db.DBTX, rec GatewayEventRecord) error
}
