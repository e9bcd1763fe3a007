package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"tripconf/services"
)

// draftFromRecord restores the quote fields stored on a preventive record.
func draftFromRecord(rec *core.Record) services.Draft {
	return services.Draft{
		Name:           rec.GetString("name"),
		CheckIn:        rec.GetDateTime("check_in").Time(),
		CheckOut:       rec.GetDateTime("check_out").Time(),
		NumberOfGuests: rec.GetInt("number_of_guests"),
		DoubleRooms:    rec.GetInt("double_rooms"),
		SingleRooms:    rec.GetInt("single_rooms"),
		FreeQuote:      rec.GetInt("free_quote"),
		Description:    rec.GetString("description"),
		NumberOfVans:   rec.GetInt("number_of_vans"),
	}
}

// ratesFromRecord restores the rate snapshot taken when the preventive was
// saved. Re-exports price against this snapshot, never the live defaults.
func ratesFromRecord(rec *core.Record) services.Rates {
	return services.Rates{
		TaxPercent:        rec.GetFloat("tax"),
		CostPerNight:      rec.GetFloat("cost_per_night"),
		CostPerDoubleRoom: rec.GetFloat("cost_per_double_room"),
		CostPerSingleRoom: rec.GetFloat("cost_per_single_room"),
	}
}

// exportDataFromRecord rebuilds the full export model from a saved
// preventive: draft, stored meal and service snapshots and the rate snapshot.
func exportDataFromRecord(rec *core.Record) (services.ExportData, error) {
	draft := draftFromRecord(rec)

	days, err := services.UnmarshalDailyMeals(rec.GetString("meals"))
	if err != nil {
		return services.ExportData{}, fmt.Errorf("stored meals are corrupt: %w", err)
	}
	selected, err := services.UnmarshalServices(rec.GetString("services"))
	if err != nil {
		return services.ExportData{}, fmt.Errorf("stored services are corrupt: %w", err)
	}

	return services.BuildExportData(draft, days, selected, ratesFromRecord(rec), rec.GetDateTime("created").Time())
}
