package domain

import "time"

// Provider identifiers for upstream box data sources
const (
	ProviderRillaBox = "rillabox"
	ProviderHypeDrop = "hypedrop"
	ProviderCasesGG  = "casesgg"
	ProviderLuxDrop  = "luxdrop"
	ProviderManual   = "manual" // boxes entered through the admin dashboard
)

// ValidProviders defines the accepted provider identifiers
var ValidProviders = map[string]bool{
	ProviderRillaBox: true,
	ProviderHypeDrop: true,
	ProviderCasesGG:  true,
	ProviderLuxDrop:  true,
	ProviderManual:   true,
}

// BoxItem is a possible prize outcome inside a box.
// DropChance is expressed on a 0-100 scale; per-box chances are expected to
// sum near 100 but this is not enforced (upstream data quality concern).
type BoxItem struct {
	Name       string  `json:"name" db:"item_name"`
	Value      float64 `json:"value" db:"item_value"`
	DropChance float64 `json:"drop_chance" db:"drop_chance"`
	Image      string  `json:"image,omitempty" db:"image_url"`
	Type       string  `json:"type,omitempty" db:"item_type"`
}

// Box is a purchasable unit whose contents are determined probabilistically
// from a fixed prize table. Boxes are read-only snapshots of provider data.
type Box struct {
	ID         int       `json:"box_id" db:"box_id"`
	OperatorID string    `json:"operator_id,omitempty" db:"operator_id"`
	Name       string    `json:"name" db:"box_name"`
	Slug       string    `json:"slug" db:"slug"`
	Price      float64   `json:"price" db:"price"`
	Category   string    `json:"category" db:"category"`
	Tags       []string  `json:"tags" db:"tags"`
	Provider   string    `json:"provider" db:"provider"`
	ImageURL   string    `json:"image_url,omitempty" db:"image_url"`
	Items      []BoxItem `json:"all_items"`
	Published  bool      `json:"published" db:"published"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// ExpectedValue returns the probability-weighted value of a single opening.
func (b Box) ExpectedValue() float64 {
	var ev float64
	for _, item := range b.Items {
		ev += item.Value * item.DropChance / 100
	}
	return ev
}

// BoxFilter narrows catalog listings. Zero values mean "no constraint".
type BoxFilter struct {
	Category      string
	Provider      string
	MinPrice      float64
	MaxPrice      float64
	PublishedOnly bool
	SortBy        string // one of the SortBy* constants
}

// Sort orders accepted by BoxFilter.SortBy
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByNewest    = "newest"
)

// IsValidSortBy checks if a sort string is valid (empty string is valid = default order)
func IsValidSortBy(sortBy string) bool {
	if sortBy == "" {
		return true
	}
	return sortBy == SortByName || sortBy == SortByPriceAsc ||
		sortBy == SortByPriceDesc || sortBy == SortByNewest
}
