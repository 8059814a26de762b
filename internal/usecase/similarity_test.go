package usecase

import (
	"math"
	"testing"
)

func TestCosineMatrix(t *testing.T) {
	t.Run("symmetric with unit diagonal and values in range", func(t *testing.T) {
		v := NewVectorizer(0)
		vectors := v.FitTransform([]string{
			"kulit berjerawat sabun cuci muka",
			"kulit kering moisturizer ceramide",
			"semua jenis kulit micellar water",
			"sunscreen spf 50 uv protection",
		})

		matrix := CosineMatrix(vectors)

		for i := range matrix {
			if matrix[i][i] != 1.0 {
				t.Errorf("matrix[%d][%d] = %v, want 1.0", i, i, matrix[i][i])
			}
			for j := range matrix[i] {
				if matrix[i][j] != matrix[j][i] {
					t.Errorf("matrix not symmetric at (%d,%d): %v vs %v", i, j, matrix[i][j], matrix[j][i])
				}
				if matrix[i][j] < 0 || matrix[i][j] > 1 {
					t.Errorf("matrix[%d][%d] = %v, want within [0,1]", i, j, matrix[i][j])
				}
			}
		}
	})

	t.Run("identical documents are all maximally similar", func(t *testing.T) {
		doc := "niacinamide serum brightening"
		v := NewVectorizer(0)
		vectors := v.FitTransform([]string{doc, doc, doc})

		matrix := CosineMatrix(vectors)

		for i := range matrix {
			for j := range matrix[i] {
				if math.Abs(matrix[i][j]-1.0) > 1e-9 {
					t.Errorf("matrix[%d][%d] = %v, want 1.0", i, j, matrix[i][j])
				}
			}
		}
	})

	t.Run("disjoint documents have zero similarity", func(t *testing.T) {
		v := NewVectorizer(0)
		vectors := v.FitTransform([]string{"toner hydrating", "sunscreen protection"})

		matrix := CosineMatrix(vectors)

		if matrix[0][1] != 0 {
			t.Errorf("matrix[0][1] = %v, want 0 for disjoint vocabularies", matrix[0][1])
		}
	})

	t.Run("zero vector keeps unit self similarity", func(t *testing.T) {
		v := NewVectorizer(0)
		vectors := v.FitTransform([]string{"serum pencerah", "?"})

		matrix := CosineMatrix(vectors)

		if matrix[1][1] != 1.0 {
			t.Errorf("matrix[1][1] = %v, want 1.0", matrix[1][1])
		}
		if matrix[0][1] != 0 {
			t.Errorf("matrix[0][1] = %v, want 0", matrix[0][1])
		}
	})
}
