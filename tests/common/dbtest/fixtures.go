//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference rooms seeded into every fresh database.
var (
	StandardRoomID    = uuid.MustParse("6f1c2a1e-0b7e-4c55-9a43-0c1d7d1f0a01")
	VIPRoomID         = uuid.MustParse("6f1c2a1e-0b7e-4c55-9a43-0c1d7d1f0a02")
	MaintenanceRoomID = uuid.MustParse("6f1c2a1e-0b7e-4c55-9a43-0c1d7d1f0a03")
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RoomFixture struct {
	Name            string
	Capacity        int
	Features        string
	HourlyRateCents int64
	RoomType        string
	Status          string
}

func CreateTestRoom(t *testing.T, db DBLike, f RoomFixture) uuid.UUID {
	t.Helper()

	if f.RoomType == "" {
		f.RoomType = "standard"
	}
	if f.Status == "" {
		f.Status = "normal"
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO rooms (id, name, capacity, features, hourly_rate_cents, room_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, f.Name, f.Capacity, f.Features, f.HourlyRateCents, f.RoomType, f.Status)
	require.NoError(t, err)

	return id
}

// CountActiveReservations counts non-cancelled reservations of a room on a day.
func CountActiveReservations(t *testing.T, db DBLike, roomID uuid.UUID, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM reservations
		WHERE room_id = $1 AND reservation_date = $2::date AND status <> 'cancelled'`,
		roomID, date).Scan(&n)
	require.NoError(t, err)

	return n
}

// CountNotificationJobs counts outbox rows for a topic.
func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)

	return n
}

// SeedReferenceData inserts the three rooms every suite starts from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO rooms (id, name, capacity, features, hourly_rate_cents, room_type, status) VALUES
		    ($1, 'Standard Room', 8, 'projector,whiteboard', 300000, 'standard', 'normal'),
		    ($2, 'VIP Lounge', 12, 'projector,karaoke,bar', 800000, 'vip', 'normal'),
		    ($3, 'Closed Room', 6, 'whiteboard', 200000, 'standard', 'maintenance')
		ON CONFLICT (id) DO NOTHING;
	`, StandardRoomID, VIPRoomID, MaintenanceRoomID)
	return err
}

// tables lists every table in dependency order, children first.
var tables = []string{"notification_jobs", "idempotency_keys", "reservations", "rooms"}

// ResetDB empties every table and reseeds the reference rooms.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate: %w", err)
	}
	return SeedReferenceData(pool)
}
