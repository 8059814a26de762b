package dataset

import (
	"context"

	"github.com/glowmatch/backend/internal/domain"
)

// seedImageURL is the shared catalog thumbnail for seed rows without a
// product-specific image.
const seedImageURL = "https://images.tokopedia.net/img/cache/700/hDjmkQ/2023/10/26/1d505370-96f7-4148-8167-bd1c9258ac7f.jpg"

// seedRow is one built-in catalog entry. Column layout mirrors the
// original marketplace export (Indonesian headers), so the seed data runs
// through the same schema aliasing as an uploaded dataset.
type seedRow struct {
	id          int
	name        string
	brand       string
	subcategory string
	benefit     string
	skinType    string
	rating      float64
	description string
	price       float64
	size        float64
	claims      string
	imageURL    string
}

// SeedSource serves the built-in beauty product catalog used when no
// external dataset is configured: 44 products across 10 brands.
type SeedSource struct{}

// NewSeedSource creates the built-in catalog source.
func NewSeedSource() SeedSource {
	return SeedSource{}
}

// Name identifies the source in startup logs.
func (SeedSource) Name() string {
	return "seed catalog"
}

// Rows converts the seed table into a raw table with the original
// free-form column names.
func (SeedSource) Rows(_ context.Context) (domain.RawTable, error) {
	rows := make(domain.RawTable, 0, len(seedRows))
	for _, r := range seedRows {
		image := r.imageURL
		if image == "" {
			image = seedImageURL
		}
		rows = append(rows, domain.RawRow{
			"id":                     r.id,
			"nama_produk":            r.name,
			"brand":                  r.brand,
			"sub_kategori":           r.subcategory,
			"manfaat":                r.benefit,
			"jenis_kulit_kompatibel": r.skinType,
			"rating":                 r.rating,
			"deskripsi":              r.description,
			"harga_idr":              r.price,
			"size_ml":                r.size,
			"klaim":                  r.claims,
			"url_gambar":             image,
		})
	}
	return rows, nil
}

var seedRows = []seedRow{
	// Skintific
	{1, "Skintific", "Skintific", "Panthenol Cleanser", "Sabun cuci muka", "Kulit jerawat & Kemerahan", 5.00, "Panthenol: menenangkan iritasi kulit", 89000, 120, "Hydrating|Brightening", "https://images.tokopedia.net/img/cache/700/VqbcmM/2023/5/31/c8c5e5f0-5f5e-4b4a-9c4c-8e8f5f5f5f5f.jpg"},
	{1, "Skintific", "Skintific", "Niacinamide Toner", "Sebagai booster pencerah kulit", "Kulit kusam", 4.9, "Toner dengan kandungan Triple Brightening Agents", 150000, 100, "Hydrating|Soothing|Barrier", "https://images.soco.id/b5be06c1-f275-4aa6-a93d-01fcb786e608-.jpg"},
	{1, "Skintific", "Skintific", "Dark Spot Serum", "Memudarkan noda hitam", "Kulit kusam, noda hitam, jerawat", 5.00, "Skintific SymWhite377 Dark Spot Serum", 139000, 20, "Exfoliating|Brightening", "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSkxMwaigURX06oCNV3VDVHBnStQgHP3E4AZt-gFmA27DFT0KiUxUP7HpZrKQytkT1X4wk&usqp=CAU"},
	{1, "Skintific", "Skintific", "Moisturizer 5x Ceramide", "Mengontrol minyak & jerawat", "Kulit berminyak dan berjerawat", 4.9, "Skintific 5x Ceramide Barrier Moisture Gel 30g", 139000, 30, "Anti-acne|Oil control", ""},
	{1, "Skintific", "Skintific", "Daily Sunscreen", "Menenangkan dan melembabkan", "Kulit berjerawat", 5.00, "The Water-Like Elegant sunscreen yang ringan", 109000, 30, "Hydrating|Soothing", "https://cf.shopee.co.id/file/id-11134207-23030-pz7j7j7j7j7j7j"},
	// Glad2Glow
	{2, "Glad2Glow", "Glad2Glow", "Micellar Water", "Pembersih make up", "Kulit berjerawat", 5.00, "Pembersih makeup yang lembut", 28000, 80, "Cleansing", ""},
	{2, "Glad2Glow", "Glad2Glow", "Face wash", "Sabun cuci muka", "Kulit berjerawat, kering, berminyak", 4.9, "Glad2Glow Tremella Vita B5 Cleanser GEL", 29000, 70, "Gentle Cleansing", ""},
	{2, "Glad2Glow", "Glad2Glow", "Ceramide Moisturizer", "Merawat Skin Barrier", "Kulit kering, berminyak, sensitif", 4.7, "Moisturizer dengan ekstrak blueberry dan ceramide", 34000, 30, "Soothing|Barrier", ""},
	{2, "Glad2Glow", "Glad2Glow", "Pomegranate Serum", "Mencerahkan kulit", "Kulit kusam, bertekstur", 4.9, "Serum Niacinamide untuk mencerahkan", 35000, 17, "Brightening|Antioxidant", ""},
	// The Originote
	{3, "The Originote", "The Originote", "Micellar Water", "Membersihkan Kotoran & Makeup", "Semua jenis kulit", 5.00, "Micellar water untuk makeup waterproof", 45000, 300, "Cleansing|Oil control", ""},
	{3, "The Originote", "The Originote", "Facial Cleanser", "Pembersih Muka", "Semua jenis kulit", 5.00, "The originote Low Ph Cicamide facial wash", 45000, 150, "Gentle Cleansing", ""},
	{3, "The Originote", "The Originote", "Brightening Moisturizer", "Pelembab dan mencerahkan", "Kering, normal, kusam", 5.00, "Moisturizer dengan Hyaluron dan Ceramide", 34000, 50, "Brightening|Barrier", ""},
	{3, "The Originote", "The Originote", "Niacinamide serum", "Menjaga kelembapan kulit", "Semua jenis kulit", 5.00, "Serum 10% Niacinamide untuk mencerahkan", 25000, 80, "Hydrating|Brightening", ""},
	{3, "The Originote", "The Originote", "Cica-B5 Soothing Toner", "Menenangkan kemerahan", "Kulit kering, berjerawat", 5.00, "The originote Cica-B5 Soothing Essence toner", 49000, 80, "Soothing", ""},
	{3, "The Originote", "The Originote", "Mugwort B3 Clay Stick", "Menenangkan & mengencangkan", "Semua jenis kulit", 5.00, "Mugwort B3 Clay Stick Mask", 50000, 40, "Barrier|Soothing", ""},
	{3, "The Originote", "The Originote", "Caramella Sunscreen", "Perawatan muka berminyak", "Kulit berminyak, berjerawat", 5.00, "The originote caramella sunscreen SPF 50", 40000, 50, "UV Protection", ""},
	// Scarlett
	{4, "Scarlett", "Scarlett", "Facial Wash", "Pembersih Wajah", "Semua jenis kulit", 5.00, "Facial wash mengandung Glutathione & Vitamin E", 50000, 100, "Brightening|Antioxidant", ""},
	{4, "Scarlett", "Scarlett", "Acne Essence Toner", "Menenangkan jerawat meradang", "Kulit berjerawat", 5.00, "Toner dengan kandungan Green Tea Water", 60000, 100, "Anti-acne|Soothing", ""},
	{4, "Scarlett", "Scarlett", "Ceramide Moisturizer", "Merawat Skin Barrier", "Semua jenis kulit", 5.00, "Scarlett whitening 7x ceramide moisturizer", 56000, 20, "Barrier Repair", ""},
	{4, "Scarlett", "Scarlett", "Niacinamide Serum", "Serum pencerah untuk pemula", "Kering, normal", 5.00, "Scarlett whitening niacinemide 5% serum", 78000, 15, "Brightening", ""},
	// MS Glow
	{5, "MS Glow", "MS Glow", "Facial Wash", "Pembersih wajah", "Semua jenis kulit", 5.00, "Pencuci muka untuk membersihkan kotoran", 45000, 50, "Brightening", ""},
	{5, "MS Glow", "MS Glow", "WhitecallDNA Toner", "Melembabkan & menyamarkan noda", "Semua jenis kulit", 5.00, "Toner diformulasikan dengan whitecelldna", 45000, 50, "Even Tone", ""},
	{5, "MS Glow", "MS Glow", "Calm Blemish Moisturizer", "Menenangkan kulit sensitif", "Kulit berjerawat, sensitif", 5.00, "Moisturizer dengan panthenol & centella asiatica", 56000, 40, "Soothing|Anti-acne", ""},
	{5, "MS Glow", "MS Glow", "Whitecell DnA Serum", "Mencerahkan & menyamarkan flek", "Semua jenis kulit", 5.00, "Mengandung niacinemide, Glycolic Acid", 35000, 15, "Brightening|Anti-aging", ""},
	// Scora
	{6, "Scora", "Scora", "Micellar Cleansing Water", "Mengangkat Makeup & Kotoran", "Kulit sensitif", 5.00, "Scora Gentle and Sooth Micellar water", 67000, 100, "Cleansing", ""},
	{6, "Scora", "Scora", "Gentle Low Ph Cleanser", "Sabun muka oily & acne prone", "Kulit berminyak", 5.00, "Pembersih wajah dengan kandungan pH rendah", 50000, 100, "Oil Control", ""},
	{6, "Scora", "Scora", "Arbutin Serum", "Meratakan warna kulit", "Kulit jerawat dan berminyak", 5.00, "Serum All-in-one brightening", 50000, 20, "Brightening", ""},
	{6, "Scora", "Scora", "Bright me up Sunscreen", "Mencerahkan & melindungi dari UV", "Semua jenis kulit", 5.00, "Diformulasikan dengan teknologi hybrid SPF 40", 50000, 40, "UV Protection", ""},
	// Benings
	{7, "Benings", "Bening's Skincare", "Facial Wash", "Mencerahkan & menghilangkan flek", "Kombinasi", 5.00, "Diformulasikan dengan bahan aktif dari Eropa", 100000, 60, "Brightening", ""},
	{7, "Benings", "Bening's Skincare", "Daily Sunscreen", "Melindungi dari UV & melembabkan", "Kombinasi, kusam, berminyak", 5.00, "Tabir surya harian untuk melindungi kulit", 40000, 50, "UV Protection", ""},
	// Wardah
	{8, "Wardah", "Wardah", "Bright+ Tone Up Micellar", "Membersihkan & mencerahkan", "Kulit kusam", 5.00, "Dengan teknologi 3 powerful actions", 40000, 100, "Cleansing|Brightening", ""},
	{8, "Wardah", "Wardah", "Facial Wash Nature Daily", "Sabun cuci muka lembut", "Semua jenis kulit", 5.00, "Membersihkan tanpa merusak skin barrier", 59000, 50, "Gentle Cleansing", ""},
	{8, "Wardah", "Wardah", "Essence Toner", "Menyamarkan noda hitam", "Semua jenis kulit", 5.00, "Nature daily aloe hydramild essence toner", 43000, 100, "Even Tone", ""},
	{8, "Wardah", "Wardah", "Glowshot Day Moisturizer", "Pelembab & pemutih wajah", "Normal, berminyak", 5.00, "Efektif mencerahkan dan terlindungi", 53000, 30, "Brightening", ""},
	{8, "Wardah", "Wardah", "Acne Calming Sunscreen", "Melindungi & mengatasi jerawat", "Berminyak, berjerawat", 5.00, "Wardah UV Acne calming sunscreen SPF 35", 85000, 35, "UV Protection|Anti-acne", ""},
	// Pond's
	{9, "Pond's", "Pond's", "Micellar Miracle Water", "Membersihkan & mengangkat makeup", "Semua jenis kulit", 5.00, "Kekuatan 3-in-1 untuk menghapus makeup", 96000, 100, "Cleansing", ""},
	{9, "Pond's", "Pond's", "Facial Foam", "10x lebih efektif membersihkan pori", "Semua jenis kulit", 5.00, "Sabun cuci muka dengan teknologi D-TOXX", 43000, 100, "Deep Cleansing", ""},
	{9, "Pond's", "Pond's", "Night Serum", "Memudarkan noda hitam", "Semua jenis kulit", 5.00, "Serum dengan NIASORCINOL", 58000, 14, "Brightening|Repairing", ""},
	{9, "Pond's", "Pond's", "Brightening Moisturizer", "Menjaga skin biome", "Kulit kering, jerawat", 5.00, "Moisturizer ringan dengan PRE-BIOTICS", 32000, 20, "Balancing|Hydrating", ""},
	{9, "Pond's", "Pond's", "Moisturizer", "Menenangkan kemerahan kulit", "Semua jenis kulit", 5.00, "Pond's Juice Collection Moisturizer", 25000, 20, "Soothing|Hydrating", ""},
	// Emina
	{10, "Emina", "Emina", "Micellar Water", "Membersihkan debu dan kotoran", "Kering, kusam, berjerawat", 5.00, "Emina fife star micellar water pH 5.5", 89000, 100, "Gentle Cleansing", ""},
	{10, "Emina", "Emina", "Face Wash", "Mencerahkan & memperkuat skin barrier", "Semua jenis kulit", 5.00, "Emina brightening face wash with niacinemide", 54000, 100, "Brightening", ""},
	{10, "Emina", "Emina", "Bright Stuff Face Toner", "Membersihkan & mencerahkan kulit", "Semua jenis kulit", 5.00, "Emina bright stuff yang menghidrasi kulit", 23000, 100, "Refreshing|Brightening", ""},
	{10, "Emina", "Emina", "Bright Stuff Face Serum", "Membuat kulit lembab & elastis", "Semua jenis kulit", 5.00, "Serum diformulasikan dengan Oxybiome", 56000, 30, "Hydrating|Glowing", ""},
}
