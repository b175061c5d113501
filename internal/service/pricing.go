package service

import (
	"strings"

	"github.com/Safeeya-Munawwar/Tour-Website-sub002/internal/entities"
)

// childRate is the share of the adult price charged per child.
const childRate = 0.5

// CalculatePrice derives the total for a selection. Unknown or empty tour
// names price to 0.
func CalculatePrice(sel entities.BookingSelection, table entities.PriceTable) float64 {
	return SummarizePrice(sel, table).Total
}

func SummarizePrice(sel entities.BookingSelection, table entities.PriceTable) entities.PriceSummary {
	summary := entities.PriceSummary{
		TourType: sel.TourType,
		TourName: sel.TourName,
		Adults:   sel.Adults,
		Children: sel.Children,
	}
	if strings.TrimSpace(sel.TourName) == "" {
		return summary
	}
	unit, ok := table.UnitPrice(sel.TourType, sel.TourName)
	if !ok {
		return summary
	}
	summary.UnitPrice = unit

	perPerson := unit
	if sel.TourType == entities.RoundTour {
		summary.Days = sel.Days
		perPerson = unit * float64(sel.Days)
	}
	summary.AdultsTotal = perPerson * float64(sel.Adults)
	summary.ChildrenTotal = childRate * perPerson * float64(sel.Children)
	summary.Total = summary.AdultsTotal + summary.ChildrenTotal
	return summary
}
