//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

type CoachFixture struct {
	DisplayName      string
	PaymentAccountID string
	PaymentEnabled   bool
	Active           bool
}

func CreateTestCoach(t *testing.T, db DBLike, userID uuid.UUID, f CoachFixture) uuid.UUID {
	t.Helper()

	var accountID *string
	if f.PaymentAccountID != "" {
		accountID = &f.PaymentAccountID
	}
	coachID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO coaches (id, user_id, display_name, is_active, payment_account_id, payment_enabled)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		coachID, userID, f.DisplayName, f.Active, accountID, f.PaymentEnabled)
	require.NoError(t, err)
	return coachID
}

func CreateTestPackage(t *testing.T, db DBLike, coachID uuid.UUID, title string, durationMinutes int, priceMinor int64) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO packages (id, coach_id, title, duration_minutes, price_minor, currency)
		 VALUES ($1, $2, $3, $4, $5, 'usd')`,
		packageID, coachID, title, durationMinutes, priceMinor)
	require.NoError(t, err)
	return packageID
}

// MarkBookingCompleted moves a booking to COMPLETED the way the session scheduler would.
func MarkBookingCompleted(t *testing.T, db DBLike, bookingID uuid.UUID) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE bookings SET status = 'COMPLETED', updated_at = now() WHERE id = $1", bookingID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status))
	return status
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
