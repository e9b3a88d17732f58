package domain

import "github.com/shopspring/decimal"

// Cost category names, in the order the calculator presents them.
const (
	CategoryAccommodation = "accommodation"
	CategoryTransport     = "transport"
	CategoryFlight        = "flight"
	CategoryTrain         = "train"
	CategoryEntrance      = "entrance"
	CategoryMeal          = "meal"
	CategoryGuide         = "guide"
	CategoryDocument      = "document"
	CategoryPackage       = "package"
)

// CostCategories lists all nine categories in display order.
var CostCategories = []string{
	CategoryAccommodation,
	CategoryTransport,
	CategoryFlight,
	CategoryTrain,
	CategoryEntrance,
	CategoryMeal,
	CategoryGuide,
	CategoryDocument,
	CategoryPackage,
}

// CostLine is a single-currency cost row whose total is a product of its
// quantity/price fields. PackageLine is the exception (fixed per-currency
// columns) and is aggregated separately.
type CostLine interface {
	LineCurrency() string
	Cost() decimal.Decimal
}

// AccommodationLine costs numRooms x numNights x price, one row per room type
// per accommodation.
type AccommodationLine struct {
	LineID    string          `json:"lineID"`
	Place     string          `json:"place"`
	RoomType  string          `json:"roomType"`
	NumRooms  int64           `json:"numRooms"`
	NumNights int64           `json:"numNights"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

func (l AccommodationLine) LineCurrency() string { return l.Currency }
func (l AccommodationLine) Cost() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.NumRooms)).Mul(decimal.NewFromInt(l.NumNights))
}

// TransportLine costs numVehicles x numDays x pricePerVehicle.
type TransportLine struct {
	LineID          string          `json:"lineID"`
	Detail          string          `json:"detail"`
	NumVehicles     int64           `json:"numVehicles"`
	NumDays         int64           `json:"numDays"`
	PricePerVehicle decimal.Decimal `json:"pricePerVehicle"`
	Currency        string          `json:"currency"`
}

func (l TransportLine) LineCurrency() string { return l.Currency }
func (l TransportLine) Cost() decimal.Decimal {
	return l.PricePerVehicle.Mul(decimal.NewFromInt(l.NumVehicles)).Mul(decimal.NewFromInt(l.NumDays))
}

// FlightLine costs pricePerPerson x numPeople.
type FlightLine struct {
	LineID         string          `json:"lineID"`
	Route          string          `json:"route"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	NumPeople      int64           `json:"numPeople"`
	Currency       string          `json:"currency"`
}

func (l FlightLine) LineCurrency() string { return l.Currency }
func (l FlightLine) Cost() decimal.Decimal {
	return l.PricePerPerson.Mul(decimal.NewFromInt(l.NumPeople))
}

// TrainLine costs pricePerTicket x numTickets.
type TrainLine struct {
	LineID         string          `json:"lineID"`
	Route          string          `json:"route"`
	PricePerTicket decimal.Decimal `json:"pricePerTicket"`
	NumTickets     int64           `json:"numTickets"`
	Currency       string          `json:"currency"`
}

func (l TrainLine) LineCurrency() string { return l.Currency }
func (l TrainLine) Cost() decimal.Decimal {
	return l.PricePerTicket.Mul(decimal.NewFromInt(l.NumTickets))
}

// EntranceLine costs pax x numLocations x price.
type EntranceLine struct {
	LineID       string          `json:"lineID"`
	Detail       string          `json:"detail"`
	Pax          int64           `json:"pax"`
	NumLocations int64           `json:"numLocations"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
}

func (l EntranceLine) LineCurrency() string { return l.Currency }
func (l EntranceLine) Cost() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Pax)).Mul(decimal.NewFromInt(l.NumLocations))
}

// MealLine costs (breakfast + lunch + dinner) x pricePerMeal x pax.
type MealLine struct {
	LineID       string          `json:"lineID"`
	Detail       string          `json:"detail"`
	Breakfast    int64           `json:"breakfast"`
	Lunch        int64           `json:"lunch"`
	Dinner       int64           `json:"dinner"`
	PricePerMeal decimal.Decimal `json:"pricePerMeal"`
	Pax          int64           `json:"pax"`
	Currency     string          `json:"currency"`
}

func (l MealLine) LineCurrency() string { return l.Currency }
func (l MealLine) Cost() decimal.Decimal {
	meals := decimal.NewFromInt(l.Breakfast + l.Lunch + l.Dinner)
	return meals.Mul(l.PricePerMeal).Mul(decimal.NewFromInt(l.Pax))
}

// GuideLine costs numGuides x numDays x pricePerDay.
type GuideLine struct {
	LineID      string          `json:"lineID"`
	Name        string          `json:"name"`
	NumGuides   int64           `json:"numGuides"`
	NumDays     int64           `json:"numDays"`
	PricePerDay decimal.Decimal `json:"pricePerDay"`
	Currency    string          `json:"currency"`
}

func (l GuideLine) LineCurrency() string { return l.Currency }
func (l GuideLine) Cost() decimal.Decimal {
	return l.PricePerDay.Mul(decimal.NewFromInt(l.NumGuides)).Mul(decimal.NewFromInt(l.NumDays))
}

// DocumentLine costs pax x price (visas, permits and similar paperwork).
type DocumentLine struct {
	LineID   string          `json:"lineID"`
	Detail   string          `json:"detail"`
	Pax      int64           `json:"pax"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

func (l DocumentLine) LineCurrency() string { return l.Currency }
func (l DocumentLine) Cost() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Pax))
}

// PackageLine is an overseas package with fixed per-currency price columns
// summed directly, no quantity multiplier.
type PackageLine struct {
	LineID   string          `json:"lineID"`
	Detail   string          `json:"detail"`
	PriceUSD decimal.Decimal `json:"priceUSD"`
	PriceTHB decimal.Decimal `json:"priceTHB"`
	PriceCNY decimal.Decimal `json:"priceCNY"`
}

// Amounts returns the package's per-currency prices as a MoneyMap.
func (l PackageLine) Amounts() MoneyMap {
	m := NewMoneyMap()
	if !l.PriceUSD.IsZero() {
		m.Add(CurrencyUSD, l.PriceUSD)
	}
	if !l.PriceTHB.IsZero() {
		m.Add(CurrencyTHB, l.PriceTHB)
	}
	if !l.PriceCNY.IsZero() {
		m.Add(CurrencyCNY, l.PriceCNY)
	}
	return m
}

// AllCosts holds the nine categorized line arrays of a saved calculation.
type AllCosts struct {
	Accommodations []AccommodationLine `json:"accommodations"`
	Transports     []TransportLine     `json:"transports"`
	Flights        []FlightLine        `json:"flights"`
	Trains         []TrainLine         `json:"trains"`
	Entrances      []EntranceLine      `json:"entrances"`
	Meals          []MealLine          `json:"meals"`
	Guides         []GuideLine         `json:"guides"`
	Documents      []DocumentLine      `json:"documents"`
	Packages       []PackageLine       `json:"packages"`
}

// TourInfo is the identifying header of a saved calculation.
type TourInfo struct {
	Code        string `json:"code"`
	Destination string `json:"destination"`
	Pax         int    `json:"pax"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Notes       string `json:"notes"`
}

// Shareholder is one row of the dividend split table. Percentage is stored as
// a fraction (0.3 means 30%); rows are independently edited and are not
// required to sum to 1.
type Shareholder struct {
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SavedCalculation is a standalone tour calculator document, not tied to a
// TourProgram. Saves are merges; the latest write wins.
type SavedCalculation struct {
	CalculationID  string          `json:"calculationID"` // Primary Key (UUID, client-generated)
	TourInfo       TourInfo        `json:"tourInfo"`
	AllCosts       AllCosts        `json:"allCosts"`
	MarkupPercent  decimal.Decimal `json:"markupPercent"`
	TargetCurrency string          `json:"targetCurrency"`
	Shareholders   []Shareholder   `json:"shareholders"`
	AuditFields
}
