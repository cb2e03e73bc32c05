// Package themes is the registry of storefront skins. The set of theme ids is
// closed: a store record carries one of these ids and the registry resolves it
// to a descriptor and a Renderer. Unknown ids resolve to the minimal theme so a
// misconfigured store can never fail to render.
package themes

// ThemeID identifies one of the built-in themes.
type ThemeID string

const (
	Minimal    ThemeID = "minimal"
	Tech       ThemeID = "tech"
	Modern     ThemeID = "modern"
	Luxe       ThemeID = "luxe"
	Vibrant    ThemeID = "vibrant"
	Appliances ThemeID = "appliances"
	Toys       ThemeID = "toys"
	Software   ThemeID = "software"
)

// Descriptor is the static metadata shown in theme pickers.
type Descriptor struct {
	ID          ThemeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ordered keeps the picker listing stable.
var ordered = []Descriptor{
	{ID: Minimal, Name: "Minimal", Description: "Clean whitespace-first layout for any catalog", Category: "general"},
	{ID: Tech, Name: "Tech", Description: "Dark spec-sheet styling for gadgets and electronics", Category: "electronics"},
	{ID: Modern, Name: "Modern", Description: "Bold grid layout with oversized imagery", Category: "general"},
	{ID: Luxe, Name: "Luxe", Description: "Serif typography and muted gold accents for premium goods", Category: "fashion"},
	{ID: Vibrant, Name: "Vibrant", Description: "Saturated colors and playful cards", Category: "lifestyle"},
	{ID: Appliances, Name: "Appliances", Description: "Comparison-friendly listing for home appliances", Category: "home"},
	{ID: Toys, Name: "Toys", Description: "Rounded shapes and bright badges for kids' catalogs", Category: "kids"},
	{ID: Software, Name: "Software", Description: "Plan-and-feature layout for licenses and subscriptions", Category: "digital"},
}

var byID = func() map[ThemeID]Descriptor {
	m := make(map[ThemeID]Descriptor, len(ordered))
	for _, d := range ordered {
		m[d.ID] = d
	}
	return m
}()

// ByID resolves a theme id, falling back to the minimal descriptor for
// anything unknown. It never fails.
func ByID(id string) Descriptor {
	if d, ok := byID[ThemeID(id)]; ok {
		return d
	}
	return byID[Minimal]
}

// Known reports whether id names a built-in theme.
func Known(id string) bool {
	_, ok := byID[ThemeID(id)]
	return ok
}

// Available returns all descriptors in picker order.
func Available() []Descriptor {
	out := make([]Descriptor, len(ordered))
	copy(out, ordered)
	return out
}
