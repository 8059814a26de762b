package usecase

import (
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/glowmatch/backend/internal/domain"
)

// Blended-score constants. Content similarity to the filtered cohort is
// weighted higher than raw rating.
const (
	similarityWeight = 0.6
	ratingWeight     = 0.4

	maxRating = 5.0
	// Midpoint stand-in for a missing rating, so incomplete data is
	// neither penalized to 0 nor rewarded to 5.
	missingRatingDefault = 3.0

	defaultTopN = 5
)

// Fallback price bounds when the catalog carries no price data at all.
const (
	fallbackPriceMin = 0
	fallbackPriceMax = 500000
)

// Snapshot is an immutable catalog + index pair. The similarity matrix is
// only valid for the exact catalog it was built from; both are replaced
// together on every reload and never mutated in place.
type Snapshot struct {
	Catalog    *Catalog
	Vectorizer *Vectorizer
	Matrix     [][]float64
	BuiltAt    time.Time
}

// RecommenderConfig holds configuration for the recommender service.
type RecommenderConfig struct {
	MaxFeatures        int
	DefaultTopN        int
	EnableDebugLogging bool
}

// RecommenderService builds recommendation snapshots and answers filter and
// ranking queries against them. The current snapshot is swapped atomically
// on reload; readers hold one snapshot reference for a whole query and
// never observe partially-updated state.
type RecommenderService struct {
	maxFeatures int
	defaultTopN int
	debug       bool

	current atomic.Pointer[Snapshot]
}

// NewRecommenderService creates a recommender service with the given
// configuration, falling back to defaults for non-positive values.
func NewRecommenderService(config RecommenderConfig) *RecommenderService {
	topN := config.DefaultTopN
	if topN <= 0 {
		topN = defaultTopN
	}
	return &RecommenderService{
		maxFeatures: config.MaxFeatures,
		defaultTopN: topN,
		debug:       config.EnableDebugLogging,
	}
}

// BuildSnapshot normalizes the raw table into a catalog, vectorizes the
// combined features, and computes the similarity matrix. Pure with respect
// to the service's current snapshot.
func (s *RecommenderService) BuildSnapshot(rows domain.RawTable) (*Snapshot, error) {
	catalog, err := BuildCatalog(rows)
	if err != nil {
		return nil, err
	}

	vectorizer := NewVectorizer(s.maxFeatures)
	vectors := vectorizer.FitTransform(catalog.CombinedFeatures)
	matrix := CosineMatrix(vectors)

	if s.debug {
		log.Printf("[INDEX] Built snapshot: %d products, %d terms", catalog.Len(), vectorizer.VocabularySize())
	}

	return &Snapshot{
		Catalog:    catalog,
		Vectorizer: vectorizer,
		Matrix:     matrix,
		BuiltAt:    time.Now(),
	}, nil
}

// Reload builds a snapshot from the raw table and publishes it as the
// current one. The swap is atomic: in-flight queries keep the snapshot
// they started with.
func (s *RecommenderService) Reload(rows domain.RawTable) (*Snapshot, error) {
	snapshot, err := s.BuildSnapshot(rows)
	if err != nil {
		return nil, err
	}
	s.current.Store(snapshot)
	return snapshot, nil
}

// Snapshot returns the current snapshot, or ErrSnapshotNotBuilt before the
// first successful Reload.
func (s *RecommenderService) Snapshot() (*Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, domain.ErrSnapshotNotBuilt
	}
	return snapshot, nil
}

// FilterCompatible selects the catalog indices of products whose skin-token
// set contains the universal token or the normalized form of the user's
// skin type. Order is preserved from the catalog.
func (s *RecommenderService) FilterCompatible(snapshot *Snapshot, userSkinType string) []int {
	normalized := NormalizeUserSkinType(userSkinType)

	var indices []int
	for i, tokens := range snapshot.Catalog.TokenSets {
		if tokens.Has(domain.SkinAll) || tokens.Has(normalized) {
			indices = append(indices, i)
		}
	}

	if s.debug {
		log.Printf("[FILTER] Skin type %q → %q: %d of %d products compatible",
			userSkinType, normalized, len(indices), snapshot.Catalog.Len())
	}
	return indices
}

// Rank orders a candidate subset by blending each candidate's mean
// similarity to the whole subset (itself included, so a solitary candidate
// scores 1.0) with its normalized rating, then truncates to topN.
// Candidate indices must come from the same snapshot; any out-of-range
// index yields an empty result rather than a partial one.
func (s *RecommenderService) Rank(snapshot *Snapshot, candidates []int, topN int) []domain.RankedProduct {
	if len(candidates) == 0 {
		return nil
	}
	if topN <= 0 {
		topN = s.defaultTopN
	}
	n := snapshot.Catalog.Len()
	for _, idx := range candidates {
		if idx < 0 || idx >= n {
			if s.debug {
				log.Printf("[RANK] Candidate index %d out of range (catalog size %d)", idx, n)
			}
			return nil
		}
	}

	ranked := make([]domain.RankedProduct, 0, len(candidates))
	for _, idx := range candidates {
		var simSum float64
		for _, other := range candidates {
			simSum += snapshot.Matrix[idx][other]
		}
		meanSim := simSum / float64(len(candidates))

		rating := missingRatingDefault
		if r := snapshot.Catalog.Products[idx].Rating; r != nil {
			rating = *r
		}

		score := similarityWeight*meanSim + ratingWeight*(rating/maxRating)
		ranked = append(ranked, domain.RankedProduct{
			Index:   idx,
			Score:   score,
			Product: snapshot.Catalog.Products[idx],
		})
	}

	// Stable sort keeps ascending catalog order among equal scores, so
	// rankings are reproducible run to run.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Recommend runs the full query path: compatibility filter, optional
// attribute filters, then ranking. An empty result is a normal "no
// matches" outcome, not an error.
func (s *RecommenderService) Recommend(snapshot *Snapshot, request *domain.RecommendRequest) ([]domain.RankedProduct, error) {
	if request == nil || request.SkinType == "" {
		return nil, domain.ErrInvalidRequest
	}

	candidates := s.FilterCompatible(snapshot, request.SkinType)
	candidates = s.applyAttributeFilters(snapshot, candidates, request)
	return s.Rank(snapshot, candidates, request.TopN), nil
}

// applyAttributeFilters narrows candidates by subcategory, brand, minimum
// rating, and price range. A missing rating counts as 0 against a rating
// threshold; a missing price is excluded from any requested price range.
func (s *RecommenderService) applyAttributeFilters(snapshot *Snapshot, candidates []int, request *domain.RecommendRequest) []int {
	subcategory := strings.TrimSpace(request.Subcategory)
	brand := strings.TrimSpace(request.Brand)

	var kept []int
	for _, idx := range candidates {
		p := snapshot.Catalog.Products[idx]

		if subcategory != "" && strings.TrimSpace(p.Subcategory) != subcategory {
			continue
		}
		if brand != "" && strings.TrimSpace(p.Brand) != brand {
			continue
		}
		if request.MinRating > 0 {
			rating := 0.0
			if p.Rating != nil {
				rating = *p.Rating
			}
			if rating < request.MinRating {
				continue
			}
		}
		if request.MinPrice != nil || request.MaxPrice != nil {
			if p.Price == nil {
				continue
			}
			if request.MinPrice != nil && *p.Price < *request.MinPrice {
				continue
			}
			if request.MaxPrice != nil && *p.Price > *request.MaxPrice {
				continue
			}
		}
		kept = append(kept, idx)
	}

	if s.debug && len(kept) != len(candidates) {
		log.Printf("[FILTER] Attribute filters kept %d of %d candidates", len(kept), len(candidates))
	}
	return kept
}

// Facets summarizes the catalog's distinct attribute values for the
// presentation layer's choice controls.
func (s *RecommenderService) Facets(snapshot *Snapshot) domain.CatalogFacets {
	tokens := domain.NewTokenSet()
	subcategories := make(map[string]struct{})
	brands := make(map[string]struct{})

	for i, p := range snapshot.Catalog.Products {
		for _, t := range snapshot.Catalog.TokenSets[i].Tokens() {
			tokens.Add(t)
		}
		if sub := strings.TrimSpace(p.Subcategory); sub != "" {
			subcategories[sub] = struct{}{}
		}
		if b := strings.TrimSpace(p.Brand); b != "" {
			brands[b] = struct{}{}
		}
	}

	minPrice, maxPrice := priceBounds(snapshot.Catalog.Products)
	return domain.CatalogFacets{
		SkinTokens:    tokens.Tokens(),
		Subcategories: sortedKeys(subcategories),
		Brands:        sortedKeys(brands),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		ProductCount:  snapshot.Catalog.Len(),
	}
}

// priceBounds returns usable slider bounds for the catalog's prices.
// An all-missing price column falls back to a broad default range, and a
// degenerate range (single price point) is widened so min stays below max.
func priceBounds(products []domain.Product) (int, int) {
	var prices []float64
	for _, p := range products {
		if p.Price != nil {
			prices = append(prices, *p.Price)
		}
	}
	if len(prices) == 0 {
		return fallbackPriceMin, fallbackPriceMax
	}

	vmin, vmax := int(prices[0]), int(prices[0])
	for _, price := range prices[1:] {
		if int(price) < vmin {
			vmin = int(price)
		}
		if int(price) > vmax {
			vmax = int(price)
		}
	}
	if vmin >= vmax {
		lo := vmin - 1
		if lo < 0 {
			lo = 0
		}
		return lo, vmax + 50000
	}
	return vmin, vmax
}

// sortedKeys returns a string set's members in sorted order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
