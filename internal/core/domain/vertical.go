package domain

// Vertical identifies one of the business lines the app keeps books for.
type Vertical string

const (
	VerticalAppliance   Vertical = "appliance"
	VerticalMeat        Vertical = "meat"
	VerticalAgriculture Vertical = "agriculture"
	VerticalAutoparts   Vertical = "autoparts"
	VerticalTourism     Vertical = "tourism"
)

// Verticals lists all known business verticals.
var Verticals = []Vertical{
	VerticalAppliance,
	VerticalMeat,
	VerticalAgriculture,
	VerticalAutoparts,
	VerticalTourism,
}

// IsValid reports whether v is one of the known verticals.
func (v Vertical) IsValid() bool {
	for _, known := range Verticals {
		if v == known {
			return true
		}
	}
	return false
}
