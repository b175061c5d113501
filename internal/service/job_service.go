package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
)

// PendingBookingTTL is how long a booking may stay pending before the cron job
// expires it.
const PendingBookingTTL = 30 * time.Minute

type StaleBookingStore interface {
	GetPendingBookingIDsOlderThan(ctx context.Context, before time.Time) ([]int, error)
	UpdateBookingStatuses(ctx context.Context, ids []int, status string) error
}

type PriceRefresher interface {
	Refresh(ctx context.Context) (entities.PriceTable, error)
}

type JobService struct {
	Repo   StaleBookingStore
	Prices PriceRefresher
	now    func() time.Time
}

func NewJobService(repo StaleBookingStore, prices PriceRefresher) *JobService {
	return &JobService{Repo: repo, Prices: prices, now: time.Now}
}

// ExpireStalePendingBookings marks bookings left pending for longer than
// olderThan as expired. A pending row is left behind when the process dies
// between inserting a booking and recording the card verification result.
func (s *JobService) ExpireStalePendingBookings(ctx context.Context, olderThan time.Duration) (int, error) {
	log.Println("Cron Job: Checking for stale pending bookings...")

	bookingIDs, err := s.Repo.GetPendingBookingIDsOlderThan(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("cron job: failed to get stale pending bookings: %w", err)
	}

	if len(bookingIDs) == 0 {
		log.Println("Cron Job: No stale pending bookings found.")
		return 0, nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as '%s'. IDs: %v", len(bookingIDs), BookingStatusExpired, bookingIDs)

	if err := s.Repo.UpdateBookingStatuses(ctx, bookingIDs, BookingStatusExpired); err != nil {
		return 0, fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully expired %d bookings.", len(bookingIDs))
	return len(bookingIDs), nil
}

func (s *JobService) RefreshPriceCache(ctx context.Context) error {
	table, err := s.Prices.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to refresh price table: %w", err)
	}
	log.Printf("Cron Job: Price table refreshed (%d day tours, %d round tours).", len(table.DayTours), len(table.RoundTours))
	return nil
}

// Start schedules the jobs and returns the running scheduler; stop it on
// shutdown.
func (s *JobService) Start(ctx context.Context) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc("@every 10m", func() {
		if _, err := s.ExpireStalePendingBookings(ctx, PendingBookingTTL); err != nil {
			log.Printf("Cron Job: %v", err)
		}
	}); err != nil {
		return nil, err
	}
	if s.Prices != nil {
		if _, err := c.AddFunc("@every 15m", func() {
			if err := s.RefreshPriceCache(ctx); err != nil {
				log.Printf("Cron Job: %v", err)
			}
		}); err != nil {
			return nil, err
		}
	}
	c.Start()
	return c, nil
}
