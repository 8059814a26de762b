package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glowmatch/backend/config"
	"github.com/glowmatch/backend/internal/domain"
	"github.com/glowmatch/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()

	os.Exit(exitCode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		Recommender: config.RecommenderConfig{
			MaxFeatures: 1000,
			DefaultTopN: 5,
		},
		RateLimit: config.RateLimitConfig{PerIP: 6000},
	}
}

// loadedService returns a recommender with a small catalog already indexed.
func loadedService(t *testing.T) *usecase.RecommenderService {
	t.Helper()
	svc := usecase.NewRecommenderService(usecase.RecommenderConfig{})
	_, err := svc.Reload(domain.RawTable{
		{"nama_produk": "Universal Toner", "brand": "BrandA", "sub_kategori": "Toner",
			"jenis_kulit_kompatibel": "Semua jenis kulit", "rating": 4.8, "harga_idr": 45000},
		{"nama_produk": "Acne Serum", "brand": "BrandB", "sub_kategori": "Serum",
			"jenis_kulit_kompatibel": "Kulit berjerawat & berminyak", "rating": 4.5, "harga_idr": 90000},
		{"nama_produk": "Dry Cream", "brand": "BrandA", "sub_kategori": "Moisturizer",
			"jenis_kulit_kompatibel": "Kulit kering", "rating": 4.9, "harga_idr": 120000},
	})
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return svc
}

// setupTestRouter creates a test router around the given recommender.
func setupTestRouter(svc *usecase.RecommenderService) *gin.Engine {
	return SetupRouter(testConfig(), NewHandler(svc))
}

// TestHealthCheckEndpoint tests the health check endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter(usecase.NewRecommenderService(usecase.RecommenderConfig{}))

		req, _ := http.NewRequest("GET", "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "glowmatch-backend" {
			t.Errorf("service = %v, want glowmatch-backend", response["service"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter(usecase.NewRecommenderService(usecase.RecommenderConfig{}))

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

// TestRecommendEndpoint tests the recommendation endpoint
func TestRecommendEndpoint(t *testing.T) {
	postJSON := func(router *gin.Engine, payload string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("POST", "/api/v1/recommendations", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("returns ranked products for a skin type", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		w := postJSON(router, `{"skinType":"berminyak","topN":3}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response struct {
			Results []domain.RankedProduct `json:"results"`
			Count   int                    `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if response.Count != 2 {
			t.Errorf("count = %d, want 2 (universal + oily products)", response.Count)
		}
		for i := 1; i < len(response.Results); i++ {
			if response.Results[i-1].Score < response.Results[i].Score {
				t.Error("results are not sorted by score descending")
			}
		}
	})

	t.Run("english skin type works the same", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		w := postJSON(router, `{"skinType":"oily"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("no matches is an empty 200", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		w := postJSON(router, `{"skinType":"kering","brand":"NoSuchBrand"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["count"] != float64(0) {
			t.Errorf("count = %v, want 0", response["count"])
		}
		if results, ok := response["results"].([]interface{}); !ok || len(results) != 0 {
			t.Errorf("results = %v, want empty array", response["results"])
		}
	})

	t.Run("rejects missing skin type", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		w := postJSON(router, `{"topN":3}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		w := postJSON(router, `{"skinType":`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("unavailable before the catalog is indexed", func(t *testing.T) {
		router := setupTestRouter(usecase.NewRecommenderService(usecase.RecommenderConfig{}))

		w := postJSON(router, `{"skinType":"kering"}`)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
	})
}

// TestCatalogFacetsEndpoint tests the catalog facets endpoint
func TestCatalogFacetsEndpoint(t *testing.T) {
	t.Run("returns distinct attribute values", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		req, _ := http.NewRequest("GET", "/api/v1/catalog/facets", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var facets domain.CatalogFacets
		if err := json.Unmarshal(w.Body.Bytes(), &facets); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if facets.ProductCount != 3 {
			t.Errorf("productCount = %d, want 3", facets.ProductCount)
		}
		if len(facets.Brands) != 2 {
			t.Errorf("brands = %v, want 2 distinct brands", facets.Brands)
		}
		if facets.MinPrice != 45000 || facets.MaxPrice != 120000 {
			t.Errorf("price bounds = %d..%d, want 45000..120000", facets.MinPrice, facets.MaxPrice)
		}
	})

	t.Run("unavailable before the catalog is indexed", func(t *testing.T) {
		router := setupTestRouter(usecase.NewRecommenderService(usecase.RecommenderConfig{}))

		req, _ := http.NewRequest("GET", "/api/v1/catalog/facets", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusServiceUnavailable)
		}
	})
}

// TestUploadCatalogEndpoint tests the catalog upload endpoint
func TestUploadCatalogEndpoint(t *testing.T) {
	upload := func(router *gin.Engine, filename, content string) *httptest.ResponseRecorder {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, _ := writer.CreateFormFile("file", filename)
		part.Write([]byte(content))
		writer.Close()

		req, _ := http.NewRequest("POST", "/api/v1/catalog", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("replaces the catalog from a comma CSV", func(t *testing.T) {
		svc := loadedService(t)
		router := setupTestRouter(svc)

		content := "nama_produk,jenis_kulit_kompatibel,sub_kategori\n" +
			"New Toner,kering,Toner\n" +
			"New Serum,berminyak,Serum\n"
		w := upload(router, "catalog.csv", content)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["productCount"] != float64(2) {
			t.Errorf("productCount = %v, want 2", response["productCount"])
		}

		snapshot, err := svc.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if snapshot.Catalog.Len() != 2 {
			t.Errorf("catalog size = %d, want 2 after upload", snapshot.Catalog.Len())
		}
	})

	t.Run("accepts semicolon separated CSV", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		content := "nama_produk;jenis_kulit_kompatibel;sub_kategori\nNew Toner;kering;Toner\n"
		w := upload(router, "catalog.csv", content)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}
	})

	t.Run("rejects unparseable content", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		w := upload(router, "garbage.csv", "not a csv at all")

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects a catalog with no usable rows", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		content := "nama_produk,brand\nNameless,BrandX\n"
		w := upload(router, "bad.csv", content)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects a request without a file field", func(t *testing.T) {
		router := setupTestRouter(loadedService(t))

		req, _ := http.NewRequest("POST", "/api/v1/catalog", strings.NewReader("plain body"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
