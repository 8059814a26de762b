package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/glowmatch/backend/internal/domain"
)

// Canonical column names. Incoming columns are normalized and resolved
// through columnAliases onto this schema; anything else is ignored.
const (
	colID          = "id"
	colName        = "name"
	colBrand       = "brand"
	colSubcategory = "subcategory"
	colBenefit     = "benefit"
	colSkinType    = "skin_type"
	colRating      = "rating"
	colDescription = "description"
	colPrice       = "price"
	colSize        = "size"
	colClaims      = "claims"
	colImageURL    = "image_url"
)

// columnAliases maps normalized source column names onto the canonical
// schema. Covers the Indonesian dataset headers and common English variants.
var columnAliases = map[string]string{
	"id":                     colID,
	"name":                   colName,
	"product_name":           colName,
	"nama_produk":            colName,
	"nama":                   colName,
	"brand":                  colBrand,
	"merek":                  colBrand,
	"subcategory":            colSubcategory,
	"sub_kategori":           colSubcategory,
	"subkategori":            colSubcategory,
	"kategori":               colSubcategory,
	"category":               colSubcategory,
	"benefit":                colBenefit,
	"benefits":               colBenefit,
	"manfaat":                colBenefit,
	"skin_type":              colSkinType,
	"jenis_kulit":            colSkinType,
	"jenis_kulit_kompatibel": colSkinType,
	"rating":                 colRating,
	"description":            colDescription,
	"deskripsi":              colDescription,
	"price":                  colPrice,
	"harga":                  colPrice,
	"harga_idr":              colPrice,
	"size":                   colSize,
	"size_ml":                colSize,
	"ukuran":                 colSize,
	"claims":                 colClaims,
	"klaim":                  colClaims,
	"image_url":              colImageURL,
	"url_gambar":             colImageURL,
	"gambar":                 colImageURL,
	"image":                  colImageURL,
	"link_gambar":            colImageURL,
}

// normalizeColumnName lower-cases and trims a column header, converts
// spaces to underscores, and strips dots.
func normalizeColumnName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, ".", "")
	return n
}

// resolveColumns rewrites a raw row's keys onto the canonical schema.
// When two source columns resolve to the same canonical field, the first
// non-empty value in sorted source-key order wins, so repeated loads of
// the same table always yield the same catalog.
func resolveColumns(row domain.RawRow) domain.RawRow {
	keys := make([]string, 0, len(row))
	for key := range row {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resolved := make(domain.RawRow, len(row))
	for _, key := range keys {
		canonical := normalizeColumnName(key)
		if alias, ok := columnAliases[canonical]; ok {
			canonical = alias
		}
		if existing, ok := resolved[canonical]; ok && cellString(existing) != "" {
			continue
		}
		resolved[canonical] = row[key]
	}
	return resolved
}

// NormalizeRow coerces one raw row into a canonical Product. Missing text
// fields become empty strings; missing or unparseable numerics become nil.
// This step never fails: strictness belongs to the upstream ingestion.
func NormalizeRow(row domain.RawRow) domain.Product {
	r := resolveColumns(row)

	return domain.Product{
		ID:          cellInt(r[colID]),
		Name:        cellString(r[colName]),
		Brand:       cellString(r[colBrand]),
		Subcategory: cellString(r[colSubcategory]),
		Benefit:     cellString(r[colBenefit]),
		SkinType:    cellString(r[colSkinType]),
		Rating:      cellFloat(r[colRating]),
		Description: cellString(r[colDescription]),
		Price:       cellFloat(r[colPrice]),
		Size:        cellFloat(r[colSize]),
		Claims:      cellString(r[colClaims]),
		ImageURL:    cellString(r[colImageURL]),
	}
}

// cellString renders a cell as trimmed text; nil becomes "".
func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	default:
		return ""
	}
}

// cellFloat parses a cell leniently as a number; anything unparseable is
// missing, not an error.
func cellFloat(v any) *float64 {
	switch c := v.(type) {
	case float64:
		return &c
	case int:
		f := float64(c)
		return &f
	case string:
		s := strings.TrimSpace(c)
		if s == "" {
			return nil
		}
		// A single comma with a short fraction reads as a regional
		// decimal separator ("4,7"). Thousands-style groups ("89,000")
		// and mixed comma/dot forms are ambiguous and degrade to
		// missing rather than silently dividing by a thousand.
		if strings.Contains(s, ",") {
			frac := s[strings.IndexByte(s, ',')+1:]
			if strings.Count(s, ",") != 1 || strings.Contains(s, ".") || len(frac) == 3 {
				return nil
			}
			s = strings.Replace(s, ",", ".", 1)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// cellInt parses a cell as an integer id, defaulting to 0.
func cellInt(v any) int {
	if f := cellFloat(v); f != nil {
		return int(*f)
	}
	return 0
}
