package services

import "time"

// ExportDay is one night's meal line in the export.
type ExportDay struct {
	Date       string
	LunchName  string
	LunchCost  float64
	DinnerName string
	DinnerCost float64
}

// ExportService is one selected service line in the export.
type ExportService struct {
	Name        string
	Description string
	Cost        float64
	RequiredVan bool
}

// ExportData holds everything the PDF and Excel renderers print. It is
// assembled once per export from confirmed, saved numbers; the renderers
// never compute prices themselves.
type ExportData struct {
	Name           string
	CheckIn        string
	CheckOut       string
	Nights         int
	NumberOfGuests int
	FreeQuote      int
	PayingGuests   int
	DoubleRooms    int
	SingleRooms    int
	Description    string
	NumberOfVans   int
	ShowVans       bool

	Days     []ExportDay
	Services []ExportService

	Rates     Rates
	Breakdown CostBreakdown

	CreatedDate string
}

// BuildExportData runs the pricing model over the draft and flattens the
// result for rendering. The same inputs always produce the same output,
// so a re-export of a saved preventive is byte-stable in its numbers.
func BuildExportData(d Draft, days []DailyMeals, services []Service, rates Rates, created time.Time) (ExportData, error) {
	breakdown, err := ComputeBreakdown(d, days, services, rates)
	if err != nil {
		return ExportData{}, err
	}

	data := ExportData{
		Name:           d.Name,
		CheckIn:        d.CheckIn.Format(DefaultDateFormat),
		CheckOut:       d.CheckOut.Format(DefaultDateFormat),
		Nights:         Nights(d.CheckIn, d.CheckOut),
		NumberOfGuests: d.NumberOfGuests,
		FreeQuote:      d.FreeQuote,
		PayingGuests:   d.NumberOfGuests - d.FreeQuote,
		DoubleRooms:    d.DoubleRooms,
		SingleRooms:    d.SingleRooms,
		Description:    d.Description,
		NumberOfVans:   d.NumberOfVans,
		ShowVans:       d.NumberOfVans > 0,
		Rates:          rates,
		Breakdown:      breakdown,
		CreatedDate:    created.Format(DefaultDateFormat),
	}

	for _, day := range days {
		entry := ExportDay{
			Date:       day.Date.Format(DefaultDateFormat),
			LunchName:  "No",
			DinnerName: "No",
		}
		if day.Lunch != nil {
			entry.LunchName = day.Lunch.Name
			entry.LunchCost = day.Lunch.Cost
		}
		if day.Dinner != nil {
			entry.DinnerName = day.Dinner.Name
			entry.DinnerCost = day.Dinner.Cost
		}
		data.Days = append(data.Days, entry)
	}

	for _, svc := range services {
		data.Services = append(data.Services, ExportService{
			Name:        svc.Name,
			Description: svc.Description,
			Cost:        CostForService(svc, d.NumberOfGuests, d.NumberOfVans),
			RequiredVan: svc.IsRequiredVan,
		})
	}

	return data, nil
}
