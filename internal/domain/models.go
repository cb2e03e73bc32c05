package domain

type Store struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Logo        string `db:"logo" json:"logo"`
	Domain      string `db:"domain" json:"domain"`
	ThemeID     string `db:"theme_id" json:"theme_id"`
	Currency    string `db:"currency" json:"currency"`
	OwnerID     string `db:"owner_id" json:"owner_id"`
	Plan        string `db:"plan" json:"plan"`     // FREE | PRO | ENTERPRISE
	Status      string `db:"status" json:"status"` // ACTIVE | SUSPENDED
	CreatedAt   string `db:"created_at" json:"created_at"`
}

type Category struct {
	ID          string `db:"id" json:"id"`
	StoreID     string `db:"store_id" json:"store_id"`
	ParentID    string `db:"parent_id" json:"parent_id"` // empty for top-level categories
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Image       string `db:"image" json:"image"`
	CreatedAt   string `db:"created_at" json:"created_at"`
	UpdatedAt   string `db:"updated_at" json:"updated_at"`
}

type Product struct {
	ID              string  `db:"id" json:"id"`
	StoreID         string  `db:"store_id" json:"store_id"`
	CategoryID      string  `db:"category_id" json:"category_id"`
	Name            string  `db:"name" json:"name"`
	Description     string  `db:"description" json:"description"`
	Price           float64 `db:"price" json:"price"`
	Currency        string  `db:"currency" json:"currency"`
	ImagesJSON      string  `db:"images_json" json:"images_json"`
	Rating          float64 `db:"rating" json:"rating"`
	ReviewCount     int     `db:"review_count" json:"review_count"`
	DiscountPercent int     `db:"discount_percent" json:"discount_percent"`
	TagsJSON        string  `db:"tags_json" json:"tags_json"`
	InStock         bool    `db:"in_stock" json:"in_stock"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | OUT_OF_STOCK
	Price  string `json:"price,omitempty"`
}
