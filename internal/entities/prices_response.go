package entities

import "sort"

// PriceTable maps tour names to unit prices. Day tours are priced per person,
// round tours per person per day.
type PriceTable struct {
	DayTours   map[string]float64 `json:"day_tours"`
	RoundTours map[string]float64 `json:"round_tours"`
}

func NewPriceTable() PriceTable {
	return PriceTable{
		DayTours:   map[string]float64{},
		RoundTours: map[string]float64{},
	}
}

// UnitPrice returns the unit price for name under the given tour type.
func (p PriceTable) UnitPrice(tourType TourType, name string) (float64, bool) {
	var table map[string]float64
	switch tourType {
	case DayTour:
		table = p.DayTours
	case RoundTour:
		table = p.RoundTours
	default:
		return 0, false
	}
	price, ok := table[name]
	return price, ok
}

// Names lists the tours offered for a tour type in alphabetical order, for
// the dependent dropdown.
func (p PriceTable) Names(tourType TourType) []string {
	var table map[string]float64
	switch tourType {
	case DayTour:
		table = p.DayTours
	case RoundTour:
		table = p.RoundTours
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PricesResponse is the public price table with the dropdown options of each
// tour type.
type PricesResponse struct {
	PriceTable
	DayTourNames   []string `json:"day_tour_names"`
	RoundTourNames []string `json:"round_tour_names"`
}

func NewPricesResponse(table PriceTable) PricesResponse {
	return PricesResponse{
		PriceTable:     table,
		DayTourNames:   table.Names(DayTour),
		RoundTourNames: table.Names(RoundTour),
	}
}
