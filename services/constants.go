// Package services holds the quote calculation engine: pricing, the
// draft wizard session, meal-day reconciliation and export assembly.
package services

// Default pricing constants. Drafts in progress always read these live
// values; a persisted preventive carries its own snapshot taken at
// creation time so later rate changes never touch historical quotes.
const (
	DefaultTaxPercent        = 20.0
	DefaultCostPerNight      = 115.0
	DefaultCostPerDoubleRoom = 230.0
	DefaultCostPerSingleRoom = 180.0
)

// Wizard limits.
const (
	MinNumberOfGuests = 2
	MaxNumberOfGuests = 32
	MaxFreeQuote      = 3
	MaxDoubleRooms    = 16
	MaxSingleRooms    = 16

	NumberOfGuestsPerVan = 7
	// MaxNumberOfVans is ceil(MaxNumberOfGuests / NumberOfGuestsPerVan).
	MaxNumberOfVans = (MaxNumberOfGuests + NumberOfGuestsPerVan - 1) / NumberOfGuestsPerVan
)

const (
	// DefaultPreventivePDFName is the base file name for exported documents.
	DefaultPreventivePDFName = "TripConfiguration"

	// ConfirmationEmail is where guests send the countersigned document.
	ConfirmationEmail = "agriturismoiltesoro@gmail.com"

	// DefaultDateFormat renders dates as MM/dd/yyyy.
	DefaultDateFormat = "01/02/2006"
)

// DefaultErrorMessage is the fallback shown when an underlying failure
// carries no message of its own.
const DefaultErrorMessage = "Fatal error, please try again later"

// GuestOptions returns the selectable guest counts for the wizard.
func GuestOptions() []int {
	opts := make([]int, 0, MaxNumberOfGuests-MinNumberOfGuests+1)
	for n := MinNumberOfGuests; n <= MaxNumberOfGuests; n++ {
		opts = append(opts, n)
	}
	return opts
}

// CountOptions returns 0..max, used for room, free-quote and van selectors.
func CountOptions(max int) []int {
	opts := make([]int, 0, max+1)
	for n := 0; n <= max; n++ {
		opts = append(opts, n)
	}
	return opts
}
