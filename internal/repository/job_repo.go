package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetPendingBookingIDsOlderThan finds bookings that never left 'pending'.
func (r *JobRepository) GetPendingBookingIDsOlderThan(ctx context.Context, before time.Time) ([]int, error) {
	var ids []int
	err := r.DB.SelectContext(ctx, &ids, `SELECT id FROM bookings WHERE status = 'pending' AND created_at < $1`, before)
	if err != nil {
		return nil, fmt.Errorf("error querying stale pending bookings: %w", err)
	}
	return ids, nil
}

func (r *JobRepository) UpdateBookingStatuses(ctx context.Context, ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.ExecContext(ctx, query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating booking statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d bookings to '%s'", rowsAffected, newStatus)
	}
	return nil
}
