package entities

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HomeConfig struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	HeroTitle string             `json:"hero_title" bson:"heroTitle"`
	Subtitle  string             `json:"subtitle" bson:"subtitle"`
	HeroImage string             `json:"hero_image" bson:"heroImage"`
	HeroVideo string             `json:"hero_video" bson:"heroVideo"`
	Slides    []GallerySlide     `json:"slides" bson:"slides"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

type Destination struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Subtitle    string             `json:"subtitle" bson:"subtitle"`
	Description string             `json:"description" bson:"description"`
	HeroImage   string             `json:"hero_image" bson:"heroImage"`
	Address     string             `json:"address" bson:"address"`
	Lat         float64            `json:"lat" bson:"lat"`
	Lng         float64            `json:"lng" bson:"lng"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updatedAt"`
}

type DayTour struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Location         string             `json:"location" bson:"location"`
	Duration         string             `json:"duration" bson:"duration"`
	ShortDescription string             `json:"short_description" bson:"shortDescription"`
	HeroImage        string             `json:"hero_image" bson:"heroImage"`
	PriceLabel       string             `json:"price_label" bson:"priceLabel"`
	Detail           DayTourDetail      `json:"detail" bson:"detail"`
	CreatedAt        time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updatedAt"`
}

type DayTourDetail struct {
	Heading     string         `json:"heading" bson:"heading"`
	Description string         `json:"description" bson:"description"`
	Highlights  []string       `json:"highlights" bson:"highlights"`
	Gallery     []GallerySlide `json:"gallery" bson:"gallery"`
}

type GallerySlide struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
}

func (s *GallerySlide) SetField(field, value string) error {
	switch field {
	case "title":
		s.Title = value
	case "description":
		s.Description = value
	case "image":
		s.Image = value
	default:
		return unknownField(field)
	}
	return nil
}

type Blog struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Subtitle  string             `json:"subtitle" bson:"subtitle"`
	Author    string             `json:"author" bson:"author"`
	HeroImage string             `json:"hero_image" bson:"heroImage"`
	Content   string             `json:"content" bson:"content"`
	Published bool               `json:"published" bson:"published"`
	Comments  []Comment          `json:"comments" bson:"comments"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
}

type ContactInfo struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Phones      []string           `json:"phones" bson:"phones"`
	Emails      []string           `json:"emails" bson:"emails"`
	WhatsApp    string             `json:"whatsapp" bson:"whatsapp"`
	SocialLinks []SocialLink       `json:"social_links" bson:"socialLinks"`
	Offices     []OfficeLocation   `json:"offices" bson:"offices"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updatedAt"`
}

type SocialLink struct {
	Platform string `json:"platform" bson:"platform"`
	URL      string `json:"url" bson:"url"`
	Icon     string `json:"icon" bson:"icon"`
}

func (l *SocialLink) SetField(field, value string) error {
	switch field {
	case "platform":
		l.Platform = value
	case "url":
		l.URL = value
	case "icon":
		l.Icon = value
	default:
		return unknownField(field)
	}
	return nil
}

type OfficeLocation struct {
	Name    string  `json:"name" bson:"name"`
	Address string  `json:"address" bson:"address"`
	Phone   string  `json:"phone" bson:"phone"`
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
}

func (o *OfficeLocation) SetField(field, value string) error {
	switch field {
	case "name":
		o.Name = value
	case "address":
		o.Address = value
		// coordinates are re-resolved on save
		o.Lat, o.Lng = 0, 0
	case "phone":
		o.Phone = value
	case "lat", "lng":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return unknownField(field + "=" + value)
		}
		if field == "lat" {
			o.Lat = f
		} else {
			o.Lng = f
		}
	default:
		return unknownField(field)
	}
	return nil
}

type Taxi struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Model     string             `json:"model" bson:"model"`
	Seats     int                `json:"seats" bson:"seats"`
	Luggage   int                `json:"luggage" bson:"luggage"`
	AC        bool               `json:"ac" bson:"ac"`
	Image     string             `json:"image" bson:"image"`
	RatePerKm float64            `json:"rate_per_km" bson:"ratePerKm"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Kind      string             `json:"kind" bson:"kind"`
	Title     string             `json:"title" bson:"title"`
	Message   string             `json:"message" bson:"message"`
	Link      string             `json:"link" bson:"link"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

// AllowedSections is the list of admin panel sections a regular admin may
// open. Super-admins are not restricted by it.
type AllowedSections struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Sections  []string           `json:"sections" bson:"sections"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

func (a *AllowedSections) Allows(section string) bool {
	for _, s := range a.Sections {
		if s == section {
			return true
		}
	}
	return false
}

type TourPrice struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TourType  TourType           `json:"tour_type" bson:"tourType"`
	Name      string             `json:"name" bson:"name"`
	UnitPrice float64            `json:"unit_price" bson:"unitPrice"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

// PriceTableFrom groups price records by tour type.
func PriceTableFrom(prices []TourPrice) PriceTable {
	table := NewPriceTable()
	for _, p := range prices {
		switch p.TourType {
		case DayTour:
			table.DayTours[p.Name] = p.UnitPrice
		case RoundTour:
			table.RoundTours[p.Name] = p.UnitPrice
		}
	}
	return table
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
