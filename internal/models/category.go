package models

// CategoryID identifies one of the fixed budget categories.
type CategoryID string

// Configured category identifiers, in canonical order.
const (
	CategoryCivil     CategoryID = "civil"
	CategoryReligious CategoryID = "religious"
	CategoryVenue     CategoryID = "venue"
	CategoryAttire    CategoryID = "attire"
	CategoryVendors   CategoryID = "vendors"
	CategorySouvenirs CategoryID = "souvenirs"
	CategoryTransport CategoryID = "transport"
	CategoryTasks     CategoryID = "tasks"
)

// GuestsLabel labels the guest aggregate wherever it is shown next to
// categories.
const GuestsLabel = "Guests"

// Category is a fixed grouping for line items. Name and Icon are display
// data only.
type Category struct {
	ID   CategoryID `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Icon string     `json:"icon" yaml:"icon"`
}

var categories = []Category{
	{ID: CategoryCivil, Name: "Civil", Icon: "📋"},
	{ID: CategoryReligious, Name: "Religious Ceremony", Icon: "⛪"},
	{ID: CategoryVenue, Name: "Venue / Reception", Icon: "🏛️"},
	{ID: CategoryAttire, Name: "Attire", Icon: "👗"},
	{ID: CategoryVendors, Name: "Vendors", Icon: "🎵"},
	{ID: CategorySouvenirs, Name: "Souvenirs / Party Favors", Icon: "🎁"},
	{ID: CategoryTransport, Name: "Transport / Hotel", Icon: "🚗"},
	{ID: CategoryTasks, Name: "General Tasks", Icon: "✅"},
}

// Categories returns the configured categories in canonical order. The
// returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory returns the category with the given identifier.
func LookupCategory(id CategoryID) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// IsKnownCategory reports whether id is one of the configured categories.
func IsKnownCategory(id CategoryID) bool {
	_, ok := LookupCategory(id)
	return ok
}

// Label returns "icon name", the form used in listings.
func (c Category) Label() string {
	return c.Icon + " " + c.Name
}
