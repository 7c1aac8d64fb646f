//go:build unit

package uow

import (
	"testing"
	"time"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expect: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, expect: true},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, expect: true},
		{
			name:   "wrapped by a repository",
			err:    infra.WrapRepoErr("failed to lock room date", &pgconn.PgError{Code: "40P01"}),
			expect: true,
		},
		{name: "overlap constraint is final", err: &pgconn.PgError{Code: "23P01"}, expect: false},
		{name: "unique violation is final", err: &pgconn.PgError{Code: "23505"}, expect: false},
		{name: "domain error", err: errs.New("room is under maintenance"), expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, isRetryable(tt.err))
		})
	}
}

func TestRetryPolicyBackoff(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

	for attempt, base := range []time.Duration{100, 200, 400} {
		wait := p.backoff(attempt)
		floor := base * time.Millisecond
		assert.GreaterOrEqual(t, wait, floor, "attempt %d", attempt)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond, "attempt %d", attempt)
	}
}
