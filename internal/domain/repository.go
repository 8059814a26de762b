package domain

import "context"

// CatalogSource defines the interface for catalog data providers.
// Implementations hand over a raw row-oriented table; schema resolution
// and type coercion happen downstream in the catalog builder.
type CatalogSource interface {
	Rows(ctx context.Context) (RawTable, error)
	Name() string
}
