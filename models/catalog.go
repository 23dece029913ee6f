package models

// Catalog records are owned by the upstream shop API. The gateway holds
// only transient per-request copies, so the types mirror the upstream
// JSON and carry no behaviour.

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
	Photo       string   `json:"photo"`
	Photos      []string `json:"photos,omitempty"`
	Features    []string `json:"features,omitempty"`
	CategoryID  int      `json:"category_id,omitempty"`
}

// HomeResponse is the landing page payload: a slice of the catalog
// promoted as featured plus the category menu.
type HomeResponse struct {
	FeaturedProducts []Product  `json:"featured_products"`
	Categories       []Category `json:"categories"`
}
