// Package score provides ready-made scoring functions for selecting the
// nearest or most similar vectors.
//
// Each factory binds a query vector and returns a plain function that can
// be passed to the selector constructors directly, or wrapped when the
// candidate type carries its vector in a field. All functions assume equal
// vector lengths (caller's responsibility) and use portable pure-Go loops.
package score

import "math"

// SquaredL2 returns a scorer computing the squared L2 (Euclidean) distance
// between the query and a candidate vector. Lower is closer, so pair it
// with a bottom selection.
func SquaredL2(query []float32) func(v []float32) float32 {
	return func(v []float32) float32 {
		return squaredL2(query, v)
	}
}

// Dot returns a scorer computing the dot product between the query and a
// candidate vector. Higher is more similar, so pair it with a top
// selection.
func Dot(query []float32) func(v []float32) float32 {
	return func(v []float32) float32 {
		return dot(query, v)
	}
}

// Cosine returns a scorer computing the cosine similarity between the query
// and a candidate vector. Higher is more similar, so pair it with a top
// selection. The query magnitude is computed once up front. Zero-magnitude
// vectors score 0.
func Cosine(query []float32) func(v []float32) float32 {
	qmag := sqrt(dot(query, query))
	return func(v []float32) float32 {
		vmag := sqrt(dot(v, v))
		if qmag == 0 || vmag == 0 {
			return 0
		}
		return dot(query, v) / (qmag * vmag)
	}
}

func dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

func squaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
