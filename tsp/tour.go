// SPDX-License-Identifier: MIT
// Package tsp - tour utilities used to check decoded samples.
//
// A tour here is the open sequence of n visited locations; the closing edge
// from tour[n-1] back to tour[0] is implied.
//
// Design:
//   - No logging, no panics on user input, sentinel errors only.
//   - O(n) time for every helper.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/qubox/encoder"
)

// TourLength returns Σ_t D[tour[t], tour[t+1 mod n]].
//
// Errors:
//   - encoder instance errors for dist, ErrInfeasible when tour is not a
//     permutation of the instance order.
//
// Complexity: O(n) after the O(n²) instance check.
func TourLength(dist [][]float64, tour []int) (float64, error) {
	n, err := encoder.SquareOrder("distance", dist)
	if err != nil {
		return 0, fmt.Errorf("tsp: %w", err)
	}
	if err = encoder.ValidatePermutation(tour, n); err != nil {
		return 0, fmt.Errorf("tsp: %w", err)
	}

	var sum float64
	for t := 0; t < n; t++ {
		sum += dist[tour[t]][tour[(t+1)%n]]
	}

	return sum, nil
}

// Rotate returns a copy of tour shifted so that it starts at start.
// Rotations have equal length and equal energy.
//
// Errors:
//   - ErrInfeasible when tour is not a permutation or start is absent.
func Rotate(tour []int, start int) ([]int, error) {
	n := len(tour)
	if err := encoder.ValidatePermutation(tour, n); err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}
	pivot := -1
	for i, v := range tour {
		if v == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, fmt.Errorf("tsp: start %d not in tour: %w", start, ErrInfeasible)
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}
