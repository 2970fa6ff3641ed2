// ABOUTME: Cosine similarity between vectors of equal dimensionality
// ABOUTME: Returns 0 instead of failing for mismatched or zero vectors
package embedding

import "math"

// CosineSimilarity returns a score in [-1, 1]. Vectors of different
// length, empty vectors, and zero-magnitude vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) {
		return 0
	}
	return math.Max(-1, math.Min(1, sim))
}
