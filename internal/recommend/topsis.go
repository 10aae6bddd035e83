// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "math"

// degenerateScore is assigned when a row coincides with both ideal points.
const degenerateScore = 0.5

// ComputeScores annotates every movie with its TOPSIS closeness score.
//
// The input slice is never modified; the returned slice holds copies in
// input order. Scores are relative to this exact set of movies, so any
// addition or removal requires calling ComputeScores again over the whole
// set.
func ComputeScores(movies []Movie, cfg ScoringConfig) ([]Movie, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matrix, err := criteriaMatrix(movies, cfg.Criteria)
	if err != nil {
		return nil, err
	}

	scores := topsis(Normalize(matrix), cfg.Weights)

	out := make([]Movie, len(movies))
	for i := range movies {
		out[i] = movies[i].clone()
		out[i].TopsisScore = scores[i]
	}
	return out, nil
}

// criteriaMatrix extracts an N x len(criteria) matrix, rejecting values that
// would corrupt min-max normalization.
func criteriaMatrix(movies []Movie, criteria []Criterion) ([][]float64, error) {
	matrix := make([][]float64, len(movies))
	for i := range movies {
		row := make([]float64, len(criteria))
		for j, c := range criteria {
			v := c.value(&movies[i])
			if reason := invalidReason(c, v); reason != "" {
				return nil, &DataValidationError{
					Criterion: c,
					Index:     i,
					Title:     movies[i].Title,
					Value:     v,
					Reason:    reason,
				}
			}
			row[j] = v
		}
		matrix[i] = row
	}
	return matrix, nil
}

func invalidReason(c Criterion, v float64) string {
	switch {
	case math.IsNaN(v):
		return "not a number"
	case math.IsInf(v, 0):
		return "infinite"
	case c == CriterionVoteCount && v < 0:
		return "negative"
	case c == CriterionSentiment && (v < -1 || v > 1):
		return "outside [-1, 1]"
	}
	return ""
}

// Normalize min-max scales each column of matrix into [0, 1].
// A zero-variance column normalizes to 0 for every row.
// The input matrix is not modified.
func Normalize(matrix [][]float64) [][]float64 {
	out := make([][]float64, len(matrix))
	if len(matrix) == 0 {
		return out
	}

	cols := len(matrix[0])
	mins := make([]float64, cols)
	maxs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		mins[j] = matrix[0][j]
		maxs[j] = matrix[0][j]
	}
	for _, row := range matrix[1:] {
		for j, v := range row {
			mins[j] = math.Min(mins[j], v)
			maxs[j] = math.Max(maxs[j], v)
		}
	}

	for i, row := range matrix {
		norm := make([]float64, cols)
		for j, v := range row {
			span := maxs[j] - mins[j]
			if span == 0 {
				continue
			}
			norm[j] = (v - mins[j]) / span
		}
		out[i] = norm
	}
	return out
}

// topsis computes closeness to the ideal solution for each normalized row.
// Every criterion is a benefit criterion, so the ideal best is the column
// maximum of the weighted values and the ideal worst the column minimum.
func topsis(norm [][]float64, weights []float64) []float64 {
	scores := make([]float64, len(norm))
	if len(norm) == 0 {
		return scores
	}

	cols := len(weights)
	weighted := make([][]float64, len(norm))
	for i, row := range norm {
		w := make([]float64, cols)
		for j := range w {
			w[j] = row[j] * weights[j]
		}
		weighted[i] = w
	}

	best := append([]float64(nil), weighted[0]...)
	worst := append([]float64(nil), weighted[0]...)
	for _, row := range weighted[1:] {
		for j, v := range row {
			best[j] = math.Max(best[j], v)
			worst[j] = math.Min(worst[j], v)
		}
	}

	for i, row := range weighted {
		dBest := distance(row, best)
		dWorst := distance(row, worst)
		if dBest+dWorst == 0 {
			scores[i] = degenerateScore
			continue
		}
		scores[i] = dWorst / (dBest + dWorst)
	}
	return scores
}

func distance(a, b []float64) float64 {
	var sum float64
	for j := range a {
		d := a[j] - b[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}
