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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so tests skip the hashing cost.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestVenue(t *testing.T, db DBLike, ownerID uuid.UUID, name, status string) uuid.UUID {
	t.Helper()

	venueID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO venues (id, owner_id, name, city, category, address, description, status)
		 VALUES ($1, $2, $3, 'Tokyo', 'live_house', '1-2-3 Minato', '', $4)`,
		venueID, ownerID, name, status)
	require.NoError(t, err)

	return venueID
}

func CreateTestReservation(t *testing.T, db DBLike, venueID, userID uuid.UUID, status string, scheduledAt time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO reservations
			(id, venue_id, user_id, guest_name, guest_email, party_size, scheduled_at, status, qr_token)
		 VALUES ($1, $2, $3, 'Test Guest', 'guest@example.com', 2, $4, $5, $6)`,
		reservationID, venueID, userID, scheduledAt, status, uuid.New().String())
	require.NoError(t, err)

	return reservationID
}

// SeedReferenceData is a hook for data every test database needs. The
// schema currently has no static reference tables.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
