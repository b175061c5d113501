package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/repository"
)

// PriceSource yields the current price table.
type PriceSource interface {
	Table(ctx context.Context) (entities.PriceTable, error)
}

type PriceCacher interface {
	Get(ctx context.Context) (*entities.PriceTable, error)
	Set(ctx context.Context, table entities.PriceTable) error
	Invalidate(ctx context.Context) error
}

// PriceService reads tour prices from the content store, through the cache
// when one is configured. Prices is the admin CRUD over the same records.
type PriceService struct {
	Prices *ContentService[entities.TourPrice]
	repo   repository.ContentRepository[entities.TourPrice]
	cache  PriceCacher
}

func NewPriceService(repo repository.ContentRepository[entities.TourPrice], cache PriceCacher) *PriceService {
	s := &PriceService{repo: repo, cache: cache}
	s.Prices = NewContentService("tour price", repo,
		WithBeforeSave(validateTourPrice),
		WithAfterSave[entities.TourPrice](s.invalidate),
	)
	return s
}

func (s *PriceService) Table(ctx context.Context) (entities.PriceTable, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("Price cache read failed, falling back to content store: %v", err)
		} else if cached != nil {
			return *cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh reloads the table from the content store and repopulates the cache.
func (s *PriceService) Refresh(ctx context.Context) (entities.PriceTable, error) {
	prices, err := s.repo.List(ctx, nil)
	if err != nil {
		return entities.PriceTable{}, err
	}
	table := entities.PriceTableFrom(prices)
	if s.cache != nil {
		if err := s.cache.Set(ctx, table); err != nil {
			log.Printf("Price cache write failed: %v", err)
		}
	}
	return table, nil
}

// DefaultTourPrices is the price list a new deployment starts with.
var DefaultTourPrices = []entities.TourPrice{
	{TourType: entities.DayTour, Name: "Kandy Day Tour", UnitPrice: 15000},
	{TourType: entities.DayTour, Name: "Galle Day Tour", UnitPrice: 16500},
	{TourType: entities.DayTour, Name: "Sigiriya Day Tour", UnitPrice: 18000},
	{TourType: entities.DayTour, Name: "Ella Day Tour", UnitPrice: 17000},
	{TourType: entities.RoundTour, Name: "6 Days Round Tour", UnitPrice: 4500},
	{TourType: entities.RoundTour, Name: "8 Days Round Tour", UnitPrice: 4300},
	{TourType: entities.RoundTour, Name: "10 Days Round Tour", UnitPrice: 4000},
}

// EnsureDefaultPrices seeds DefaultTourPrices when no price exists yet and
// returns how many were created.
func (s *PriceService) EnsureDefaultPrices(ctx context.Context) (int, error) {
	existing, err := s.repo.List(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error checking tour prices: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range DefaultTourPrices {
		price := DefaultTourPrices[i]
		if _, err := s.Prices.Create(ctx, &price); err != nil {
			return i, fmt.Errorf("error seeding tour price %q: %w", price.Name, err)
		}
	}
	log.Printf("Seeded %d default tour prices", len(DefaultTourPrices))
	return len(DefaultTourPrices), nil
}

func (s *PriceService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("Price cache invalidation failed: %v", err)
	}
}

func validateTourPrice(_ context.Context, p *entities.TourPrice) error {
	var fields []string
	if !p.TourType.Valid() {
		fields = append(fields, "tour_type")
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		fields = append(fields, "name")
	}
	if p.UnitPrice <= 0 {
		fields = append(fields, "unit_price")
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields, Message: "invalid tour price: " + strings.Join(fields, ", ")}
	}
	return nil
}
