package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"tripconf/services"
)

// MigrateRateSnapshots backfills the pricing snapshot fields on preventives
// that were saved before rates were stored per record. Records without a
// cost_per_night get the current default rates so their re-exports keep
// producing the same numbers from now on. Safe to call on every startup.
func MigrateRateSnapshots(app *pocketbase.PocketBase) error {
	preventivesCol, err := app.FindCollectionByNameOrId("preventives")
	if err != nil {
		return fmt.Errorf("migrate_rates: could not find preventives collection: %w", err)
	}

	legacy, err := app.FindRecordsByFilter(
		preventivesCol,
		"cost_per_night = 0 || cost_per_night = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate_rates: could not query preventives: %w", err)
	}

	if len(legacy) == 0 {
		return nil
	}

	log.Printf("migrate_rates: found %d preventive(s) without a rate snapshot -- backfilling...\n", len(legacy))

	rates := services.DefaultRates()
	for _, record := range legacy {
		record.Set("tax", rates.TaxPercent)
		record.Set("cost_per_night", rates.CostPerNight)
		record.Set("cost_per_double_room", rates.CostPerDoubleRoom)
		record.Set("cost_per_single_room", rates.CostPerSingleRoom)

		if err := app.Save(record); err != nil {
			log.Printf("migrate_rates: failed to backfill preventive %q (%s): %v\n",
				record.GetString("name"), record.Id, err)
			continue
		}
	}

	log.Println("migrate_rates: rate snapshot backfill complete.")
	return nil
}
