package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	apperrors "github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/errors"
)

type Geocoder interface {
	Forward(ctx context.Context, address string) (entities.LatLng, error)
	Reverse(ctx context.Context, point entities.LatLng) (string, error)
}

type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder returns a geocoder that answers ServiceUnavailable when
// apiKey is empty.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	if apiKey == "" {
		return &GoogleGeocoder{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating google maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Forward(ctx context.Context, address string) (entities.LatLng, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return entities.LatLng{}, apperrors.NewValidationError("address")
	}
	if g.client == nil {
		return entities.LatLng{}, apperrors.Unavailable("geocoding", errors.New("GOOGLE_MAPS_API_KEY not set"))
	}
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return entities.LatLng{}, geocodeError(address, err)
	}
	if len(results) == 0 {
		return entities.LatLng{}, fmt.Errorf("address %q: %w", address, apperrors.ErrNotFound)
	}
	loc := results[0].Geometry.Location
	return entities.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func (g *GoogleGeocoder) Reverse(ctx context.Context, point entities.LatLng) (string, error) {
	if g.client == nil {
		return "", apperrors.Unavailable("geocoding", errors.New("GOOGLE_MAPS_API_KEY not set"))
	}
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: point.Lat, Lng: point.Lng},
	})
	what := fmt.Sprintf("%f,%f", point.Lat, point.Lng)
	if err != nil {
		return "", geocodeError(what, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("location %s: %w", what, apperrors.ErrNotFound)
	}
	return results[0].FormattedAddress, nil
}

func geocodeError(what string, err error) error {
	if strings.Contains(err.Error(), "ZERO_RESULTS") {
		return fmt.Errorf("%s: %w", what, apperrors.ErrNotFound)
	}
	return apperrors.Unavailable("geocoding", err)
}

// resolveAddress fills lat/lng for an address that has none yet. An address
// the provider does not know is a validation error; a provider outage only
// leaves the coordinates empty.
func resolveAddress(ctx context.Context, geo Geocoder, field, address string, lat, lng *float64) error {
	if geo == nil || strings.TrimSpace(address) == "" || *lat != 0 || *lng != 0 {
		return nil
	}
	point, err := geo.Forward(ctx, address)
	switch {
	case err == nil:
		*lat, *lng = point.Lat, point.Lng
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return &apperrors.ValidationError{
			Fields:  []string{field},
			Message: fmt.Sprintf("address %q could not be located", address),
		}
	default:
		log.Printf("Geocoding %q failed, saving without coordinates: %v", address, err)
		return nil
	}
}

func GeocodeDestination(geo Geocoder) func(ctx context.Context, d *entities.Destination) error {
	return func(ctx context.Context, d *entities.Destination) error {
		return resolveAddress(ctx, geo, "address", d.Address, &d.Lat, &d.Lng)
	}
}

func GeocodeOffices(geo Geocoder) func(ctx context.Context, c *entities.ContactInfo) error {
	return func(ctx context.Context, c *entities.ContactInfo) error {
		for i := range c.Offices {
			o := &c.Offices[i]
			if err := resolveAddress(ctx, geo, fmt.Sprintf("offices[%d].address", i), o.Address, &o.Lat, &o.Lng); err != nil {
				return err
			}
		}
		return nil
	}
}
