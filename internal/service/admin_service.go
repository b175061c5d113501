package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/auth"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/db"
	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
)

const (
	SectionHome          = "home"
	SectionDestinations  = "destinations"
	SectionDayTours      = "day-tours"
	SectionBlogs         = "blogs"
	SectionContact       = "contact"
	SectionTaxis         = "taxis"
	SectionNotifications = "notifications"
	SectionBookings      = "bookings"
	SectionPrices        = "prices"
)

var KnownSections = []string{
	SectionHome, SectionDestinations, SectionDayTours, SectionBlogs, SectionContact,
	SectionTaxis, SectionNotifications, SectionBookings, SectionPrices,
}

const (
	defaultBookingsLimit = 20
	maxBookingsLimit     = 100
)

// DashboardPath is where the admin panel navigates after a save. It depends
// only on the role it is given.
func DashboardPath(role, section string) string {
	if role == auth.RoleSuperAdmin {
		return "/super-admin/" + section
	}
	return "/admin/" + section
}

type BookingLister interface {
	ListBookings(ctx context.Context, filter entities.BookingFilter) ([]db.Booking, int64, error)
}

type AdminService struct {
	sections *ContentService[entities.AllowedSections]
	bookings BookingLister
}

func NewAdminService(sections *ContentService[entities.AllowedSections], bookings BookingLister) *AdminService {
	return &AdminService{sections: sections, bookings: bookings}
}

// AllowedSections returns the sections regular admins may open. Before a
// super-admin saves the list, regular admins get none.
func (s *AdminService) AllowedSections(ctx context.Context) (*entities.AllowedSections, error) {
	current, err := s.sections.Current(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &entities.AllowedSections{Sections: []string{}}, nil
		}
		return nil, err
	}
	return current, nil
}

func (s *AdminService) SetAllowedSections(ctx context.Context, sections []string) (*entities.AllowedSections, error) {
	cleaned := make([]string, 0, len(sections))
	seen := make(map[string]bool)
	for _, section := range sections {
		section = strings.TrimSpace(section)
		if !isKnownSection(section) {
			return nil, &apperrors.ValidationError{
				Fields:  []string{"sections"},
				Message: fmt.Sprintf("unknown section %q", section),
			}
		}
		if !seen[section] {
			seen[section] = true
			cleaned = append(cleaned, section)
		}
	}
	return s.sections.Edit(ctx, "", func(doc *entities.AllowedSections) error {
		doc.Sections = cleaned
		return nil
	})
}

func (s *AdminService) ListBookings(ctx context.Context, filter entities.BookingFilter) (*entities.BookingsList, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultBookingsLimit
	}
	if filter.Limit > maxBookingsLimit {
		filter.Limit = maxBookingsLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	bookings, total, err := s.bookings.ListBookings(ctx, filter)
	if err != nil {
		return nil, apperrors.Unavailable("booking store", err)
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	return &entities.BookingsList{
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
		Bookings: bookings,
	}, nil
}

func isKnownSection(section string) bool {
	for _, s := range KnownSections {
		if s == section {
			return true
		}
	}
	return false
}
