package usecase

// CosineMatrix computes the dense pairwise cosine-similarity matrix over
// L2-normalized vectors. The result is symmetric with a unit diagonal and
// every entry in [0,1]; non-negativity holds because term weights are
// non-negative. Computed once per catalog build, never per query.
func CosineMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := dot(vectors[i], vectors[j])
			if sim < 0 {
				sim = 0
			} else if sim > 1 {
				sim = 1
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}

// dot returns the inner product of two equal-length vectors. Rows are
// already L2-normalized, so this is the cosine similarity directly.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
