package themes

// Renderer is the capability surface a theme exposes to the page handlers:
// which template renders each storefront page and how the hero is styled.
// Template names are relative to the app's Views root.
type Renderer interface {
	ID() ThemeID
	HomeTemplate() string
	ProductTemplate() string
	ProductCardPartial() string
	CartTemplate() string
	CheckoutTemplate() string
	Hero() HeroStyle
}

// HeroStyle is the small set of styling knobs the shared hero partial needs.
type HeroStyle struct {
	Palette    string // base background class
	Accent     string // accent/CTA color class
	FontFamily string
	Layout     string // banner | split | tiles
}

// RendererFor resolves a theme id to its renderer. Like ByID it falls back to
// the minimal theme for unknown ids.
func RendererFor(id ThemeID) Renderer {
	switch id {
	case Tech:
		return techTheme{}
	case Modern:
		return modernTheme{}
	case Luxe:
		return luxeTheme{}
	case Vibrant:
		return vibrantTheme{}
	case Appliances:
		return appliancesTheme{}
	case Toys:
		return toysTheme{}
	case Software:
		return softwareTheme{}
	default:
		return minimalTheme{}
	}
}

type minimalTheme struct{}

func (minimalTheme) ID() ThemeID                { return Minimal }
func (minimalTheme) HomeTemplate() string       { return "minimal/home" }
func (minimalTheme) ProductTemplate() string    { return "minimal/product" }
func (minimalTheme) ProductCardPartial() string { return "minimal/card" }
func (minimalTheme) CartTemplate() string       { return "minimal/cart" }
func (minimalTheme) CheckoutTemplate() string   { return "minimal/checkout" }
func (minimalTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-white", Accent: "text-gray-900", FontFamily: "Inter", Layout: "banner"}
}

type techTheme struct{}

func (techTheme) ID() ThemeID                { return Tech }
func (techTheme) HomeTemplate() string       { return "tech/home" }
func (techTheme) ProductTemplate() string    { return "tech/product" }
func (techTheme) ProductCardPartial() string { return "tech/card" }
func (techTheme) CartTemplate() string       { return "tech/cart" }
func (techTheme) CheckoutTemplate() string   { return "tech/checkout" }
func (techTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-slate-950", Accent: "text-cyan-400", FontFamily: "JetBrains Mono", Layout: "split"}
}

type modernTheme struct{}

func (modernTheme) ID() ThemeID                { return Modern }
func (modernTheme) HomeTemplate() string       { return "modern/home" }
func (modernTheme) ProductTemplate() string    { return "modern/product" }
func (modernTheme) ProductCardPartial() string { return "modern/card" }
func (modernTheme) CartTemplate() string       { return "modern/cart" }
func (modernTheme) CheckoutTemplate() string   { return "modern/checkout" }
func (modernTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-zinc-100", Accent: "text-indigo-600", FontFamily: "Poppins", Layout: "tiles"}
}

type luxeTheme struct{}

func (luxeTheme) ID() ThemeID                { return Luxe }
func (luxeTheme) HomeTemplate() string       { return "luxe/home" }
func (luxeTheme) ProductTemplate() string    { return "luxe/product" }
func (luxeTheme) ProductCardPartial() string { return "luxe/card" }
func (luxeTheme) CartTemplate() string       { return "luxe/cart" }
func (luxeTheme) CheckoutTemplate() string   { return "luxe/checkout" }
func (luxeTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-stone-900", Accent: "text-amber-300", FontFamily: "Playfair Display", Layout: "banner"}
}

type vibrantTheme struct{}

func (vibrantTheme) ID() ThemeID                { return Vibrant }
func (vibrantTheme) HomeTemplate() string       { return "vibrant/home" }
func (vibrantTheme) ProductTemplate() string    { return "vibrant/product" }
func (vibrantTheme) ProductCardPartial() string { return "vibrant/card" }
func (vibrantTheme) CartTemplate() string       { return "vibrant/cart" }
func (vibrantTheme) CheckoutTemplate() string   { return "vibrant/checkout" }
func (vibrantTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-fuchsia-600", Accent: "text-yellow-300", FontFamily: "Nunito", Layout: "tiles"}
}

type appliancesTheme struct{}

func (appliancesTheme) ID() ThemeID                { return Appliances }
func (appliancesTheme) HomeTemplate() string       { return "appliances/home" }
func (appliancesTheme) ProductTemplate() string    { return "appliances/product" }
func (appliancesTheme) ProductCardPartial() string { return "appliances/card" }
func (appliancesTheme) CartTemplate() string       { return "appliances/cart" }
func (appliancesTheme) CheckoutTemplate() string   { return "appliances/checkout" }
func (appliancesTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-sky-50", Accent: "text-sky-700", FontFamily: "Roboto", Layout: "split"}
}

type toysTheme struct{}

func (toysTheme) ID() ThemeID                { return Toys }
func (toysTheme) HomeTemplate() string       { return "toys/home" }
func (toysTheme) ProductTemplate() string    { return "toys/product" }
func (toysTheme) ProductCardPartial() string { return "toys/card" }
func (toysTheme) CartTemplate() string       { return "toys/cart" }
func (toysTheme) CheckoutTemplate() string   { return "toys/checkout" }
func (toysTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-orange-100", Accent: "text-rose-500", FontFamily: "Baloo 2", Layout: "banner"}
}

type softwareTheme struct{}

func (softwareTheme) ID() ThemeID                { return Software }
func (softwareTheme) HomeTemplate() string       { return "software/home" }
func (softwareTheme) ProductTemplate() string    { return "software/product" }
func (softwareTheme) ProductCardPartial() string { return "software/card" }
func (softwareTheme) CartTemplate() string       { return "software/cart" }
func (softwareTheme) CheckoutTemplate() string   { return "software/checkout" }
func (softwareTheme) Hero() HeroStyle {
	return HeroStyle{Palette: "bg-gray-950", Accent: "text-emerald-400", FontFamily: "Inter", Layout: "split"}
}
