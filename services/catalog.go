package services

// PricingUnit says how a service's base price scales.
type PricingUnit int

const (
	// UnitPerGuest scales the base price linearly with guest count.
	UnitPerGuest PricingUnit = iota
	// UnitFixed is a flat price independent of guest count.
	UnitFixed
)

// Label returns the dataset/display form of the unit.
func (u PricingUnit) Label() string {
	if u == UnitFixed {
		return "fixed"
	}
	return "per_guest"
}

// ServiceDef is one entry of the service price catalog. Base prices are in
// whole rupees.
type ServiceDef struct {
	Name string
	Base float64
	Unit PricingUnit
}

// Catalog maps service name to its pricing definition. Catalogs are built
// once and treated as read-only.
type Catalog map[string]ServiceDef

// DefaultCatalog returns the built-in service price catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"Venue":              {Name: "Venue", Base: 700, Unit: UnitPerGuest},
		"Catering":           {Name: "Catering", Base: 1200, Unit: UnitPerGuest},
		"Decor":              {Name: "Decor", Base: 300, Unit: UnitPerGuest},
		"Photography":        {Name: "Photography", Base: 45000, Unit: UnitFixed},
		"Entertainment / DJ": {Name: "Entertainment / DJ", Base: 35000, Unit: UnitFixed},
		"AV Equipment":       {Name: "AV Equipment", Base: 250, Unit: UnitPerGuest},
		"Security":           {Name: "Security", Base: 90, Unit: UnitPerGuest},
		"Transport":          {Name: "Transport", Base: 150, Unit: UnitPerGuest},
	}
}

// ServiceOptions returns the catalog's service names in a stable order for
// form rendering.
var ServiceOptions = []string{
	"Venue",
	"Catering",
	"Decor",
	"Photography",
	"Entertainment / DJ",
	"AV Equipment",
	"Security",
	"Transport",
}

// TierOptions lists the service tiers in display order.
var TierOptions = []string{"Basic", "Standard", "Premium"}

// DefaultTiers returns the tier name to price multiplier mapping.
func DefaultTiers() map[string]float64 {
	return map[string]float64{
		"Basic":    1.0,
		"Standard": 1.15,
		"Premium":  1.35,
	}
}

// EventTypeOptions lists the event types offered on the recommendation form.
var EventTypeOptions = []string{
	"Wedding",
	"Birthday",
	"Conference",
	"Corporate",
}
