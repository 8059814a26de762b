package usecase

import (
	"strings"

	"github.com/glowmatch/backend/internal/domain"
)

// Catalog is the ordered product collection plus its per-row derived
// attributes. Row position is the join key shared with the term vectors
// and the similarity matrix, so all three slices stay index-aligned for
// the catalog's lifetime.
type Catalog struct {
	Products         []domain.Product
	TokenSets        []domain.TokenSet
	CombinedFeatures []string
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.Products)
}

// BuildCatalog normalizes a raw table into a catalog: schema resolution,
// row filtering, skin-token derivation, and feature combination.
// Rows missing any identifying field (name, skin type, subcategory) are
// dropped here, before vectorization, so downstream indices stay aligned.
func BuildCatalog(rows domain.RawTable) (*Catalog, error) {
	catalog := &Catalog{}

	for _, row := range rows {
		product := NormalizeRow(row)
		if product.Name == "" || product.SkinType == "" || product.Subcategory == "" {
			continue
		}
		catalog.Products = append(catalog.Products, product)
		catalog.TokenSets = append(catalog.TokenSets, ParseSkinTokens(product.SkinType))
		catalog.CombinedFeatures = append(catalog.CombinedFeatures, combineFeatures(product))
	}

	if len(catalog.Products) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return catalog, nil
}

// combineFeatures builds the synthetic text the vectorizer consumes:
// the lower-cased space-joined concatenation of the product's categorical
// and descriptive text fields.
func combineFeatures(p domain.Product) string {
	parts := []string{p.SkinType, p.Subcategory, p.Benefit, p.Claims}
	return strings.ToLower(strings.Join(parts, " "))
}
