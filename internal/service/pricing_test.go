package service

import (
	"testing"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
	"github.com/stretchr/testify/assert"
)

func testPriceTable() entities.PriceTable {
	table := entities.NewPriceTable()
	table.DayTours["Kandy Day Tour"] = 15000
	table.DayTours["Galle Day Tour"] = 12000
	table.RoundTours["6 Days Round Tour"] = 4500
	table.RoundTours["10 Days Round Tour"] = 4000
	return table
}

func TestCalculatePrice(t *testing.T) {
	table := testPriceTable()

	tests := []struct {
		name string
		sel  entities.BookingSelection
		want float64
	}{
		{
			name: "day tour with a child at half price",
			sel:  entities.BookingSelection{TourType: entities.DayTour, TourName: "Kandy Day Tour", Adults: 2, Children: 1},
			want: 37500,
		},
		{
			name: "round tour priced per person per day",
			sel:  entities.BookingSelection{TourType: entities.RoundTour, TourName: "6 Days Round Tour", Days: 4, Adults: 2},
			want: 36000,
		},
		{
			name: "round tour with children",
			sel:  entities.BookingSelection{TourType: entities.RoundTour, TourName: "10 Days Round Tour", Days: 10, Adults: 1, Children: 2},
			want: 80000,
		},
		{
			name: "empty tour name",
			sel:  entities.BookingSelection{TourType: entities.RoundTour, Days: 9, Adults: 5, Children: 3},
			want: 0,
		},
		{
			name: "unknown tour name",
			sel:  entities.BookingSelection{TourType: entities.DayTour, TourName: "Atlantis Day Tour", Adults: 2},
			want: 0,
		},
		{
			name: "name from the other table",
			sel:  entities.BookingSelection{TourType: entities.DayTour, TourName: "6 Days Round Tour", Adults: 2},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePrice(tt.sel, table))
		})
	}
}

func TestCalculatePriceIsPure(t *testing.T) {
	table := testPriceTable()
	sel := entities.BookingSelection{TourType: entities.DayTour, TourName: "Galle Day Tour", Adults: 3, Children: 1}

	first := CalculatePrice(sel, table)
	second := CalculatePrice(sel, table)
	assert.Equal(t, first, second)
	assert.Equal(t, 42000.0, first)
}

func TestSummarizePrice(t *testing.T) {
	summary := SummarizePrice(entities.BookingSelection{
		TourType: entities.RoundTour, TourName: "6 Days Round Tour", Days: 4, Adults: 2, Children: 1,
	}, testPriceTable())

	assert.Equal(t, 4500.0, summary.UnitPrice)
	assert.Equal(t, 36000.0, summary.AdultsTotal)
	assert.Equal(t, 9000.0, summary.ChildrenTotal)
	assert.Equal(t, 45000.0, summary.Total)
}
