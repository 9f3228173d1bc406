package usecase

import "github.com/fitform/backend/internal/domain"

// ClampToAvailable snaps a numeric size to the nearest candidate the product
// actually stocks. Candidates are pre-sorted ascending, so on an exact tie the
// earlier (lower) candidate wins. An empty candidate list passes the value
// through unchanged.
func ClampToAvailable(value int, available []int) int {
	if len(available) == 0 {
		return value
	}

	best := available[0]
	bestDistance := absInt(value - best)
	for _, candidate := range available[1:] {
		distance := absInt(value - candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

// ClampAlphaToAvailable is ClampToAvailable over rank distance in the fixed
// alpha ordering. Unrankable input or an empty list passes through.
func ClampAlphaToAvailable(token string, available []string) string {
	rank := domain.AlphaRank(token)
	if rank < 0 || len(available) == 0 {
		return token
	}

	best := token
	bestDistance := -1
	for _, candidate := range available {
		candidateRank := domain.AlphaRank(candidate)
		if candidateRank < 0 {
			continue
		}
		distance := absInt(rank - candidateRank)
		if bestDistance < 0 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
