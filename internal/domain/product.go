package domain

// Product is one row of the catalog after schema normalization.
// Numeric fields are pointers because "absent" must stay distinguishable
// from zero: a missing rating is neither 0 nor 5, and the ranker treats
// it differently from either.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Subcategory string   `json:"subcategory"`
	Benefit     string   `json:"benefit"`
	SkinType    string   `json:"skinType"` // raw compatibility text as provided
	Rating      *float64 `json:"rating,omitempty"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	Size        *float64 `json:"size,omitempty"`
	Claims      string   `json:"claims"`
	ImageURL    string   `json:"imageUrl"`
}

// RawRow is one row of an externally-parsed dataset before schema
// normalization. Column names are free-form; cells are strings or numbers.
type RawRow map[string]any

// RawTable is a row-oriented dataset as handed over by an ingestion source.
type RawTable []RawRow

// RankedProduct is one entry of a ranked recommendation result.
// Index is the product's position in the catalog the score was computed on.
type RankedProduct struct {
	Index   int     `json:"index"`
	Score   float64 `json:"score"`
	Product Product `json:"product"`
}

// RecommendRequest describes one recommendation query.
// SkinType is the only required field; the remaining fields narrow the
// compatible set before ranking.
type RecommendRequest struct {
	SkinType    string   `json:"skinType" binding:"required"`
	TopN        int      `json:"topN,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	MinRating   float64  `json:"minRating,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
}

// CatalogFacets summarizes the distinct attribute values of a catalog so a
// presentation layer can populate its choice controls.
type CatalogFacets struct {
	SkinTokens    []string `json:"skinTokens"`
	Subcategories []string `json:"subcategories"`
	Brands        []string `json:"brands"`
	MinPrice      int      `json:"minPrice"`
	MaxPrice      int      `json:"maxPrice"`
	ProductCount  int      `json:"productCount"`
}
