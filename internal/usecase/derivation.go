package usecase

import "github.com/fitform/backend/internal/domain"

// The band tables below are the estimation constants of the engine. Changing
// them changes recommendations for returning users, so treat them as frozen.

// frameBand maps a frame-index (or weight) upper bound to a size value.
// Bands are evaluated in order; the first bound that holds wins.
type frameBand struct {
	below float64
	size  int
}

// Default body values substituted when derivation runs without a height or
// weight; the result is an under-specified but usable estimate.
var defaultHeightCM = map[domain.Gender]float64{
	domain.GenderMale:    178,
	domain.GenderFemale:  165,
	domain.GenderUnknown: 172,
}

var defaultWeightKG = map[domain.Gender]float64{
	domain.GenderMale:    78,
	domain.GenderFemale:  63,
	domain.GenderUnknown: 70,
}

// EU numeric bands, keyed by frame index (weight_kg / height_m)
var euMaleBands = []frameBand{
	{below: 38, size: 46},
	{below: 41, size: 48},
	{below: 44, size: 50},
	{below: 47, size: 52},
	{below: 50, size: 54},
}

const euMaleDefault = 56

var euFemaleBands = []frameBand{
	{below: 30, size: 34},
	{below: 33, size: 36},
	{below: 36, size: 38},
	{below: 39, size: 40},
	{below: 42, size: 42},
	{below: 45, size: 44},
	{below: 48, size: 46},
}

const euFemaleDefault = 48

// Tall adjustment: +2 sizes at each height threshold
var euTallThresholds = map[domain.Gender][2]float64{
	domain.GenderMale:   {186, 194},
	domain.GenderFemale: {172, 180},
}

// Hard EU floors and ceilings per gender
var euSizeFloor = map[domain.Gender]int{
	domain.GenderMale:   44,
	domain.GenderFemale: 32,
}

var euSizeCeiling = map[domain.Gender]int{
	domain.GenderMale:   60,
	domain.GenderFemale: 54,
}

// Collar bands are keyed by weight, not frame index
var collarWeightBands = []frameBand{
	{below: 65, size: 38},
	{below: 72, size: 39},
	{below: 80, size: 40},
	{below: 88, size: 41},
	{below: 96, size: 42},
}

const (
	collarDefault     = 43
	collarTallHeight  = 190
	collarShortHeight = 165
)

// Alpha bands map frame index to an index into domain.AlphaRanks.
// Female thresholds sit lower than male ones; no height adjustment.
var alphaMaleBands = []frameBand{
	{below: 33, size: 1}, // XS
	{below: 37, size: 2}, // S
	{below: 41, size: 3}, // M
	{below: 45, size: 4}, // L
	{below: 49, size: 5}, // XL
	{below: 53, size: 6}, // XXL
}

var alphaFemaleBands = []frameBand{
	{below: 26, size: 0}, // XXS
	{below: 29, size: 1}, // XS
	{below: 32, size: 2}, // S
	{below: 35, size: 3}, // M
	{below: 38, size: 4}, // L
	{below: 41, size: 5}, // XL
	{below: 44, size: 6}, // XXL
}

const alphaDefaultRank = 7 // XXXL

// Waist bands, keyed by weight
var waistMaleBands = []frameBand{
	{below: 62, size: 29},
	{below: 68, size: 30},
	{below: 74, size: 31},
	{below: 80, size: 32},
	{below: 86, size: 33},
	{below: 92, size: 34},
	{below: 100, size: 36},
}

const waistMaleDefault = 38

var waistFemaleBands = []frameBand{
	{below: 50, size: 26},
	{below: 55, size: 27},
	{below: 60, size: 28},
	{below: 66, size: 29},
	{below: 72, size: 30},
	{below: 78, size: 31},
	{below: 86, size: 32},
}

const (
	waistFemaleDefault     = 34
	waistMaleTallHeight    = 190
	waistMaleShortHeight   = 165
	waistFemaleTallHeight  = 178
	waistFemaleShortHeight = 155
	waistFloor             = 24
	waistCeiling           = 48
)

// Length breakpoints per gender: below the first is short, up to and including
// the second is standard, above it long.
var lengthBreakpoints = map[domain.Gender][2]float64{
	domain.GenderMale:    {170, 184},
	domain.GenderFemale:  {162, 172},
	domain.GenderUnknown: {166, 180},
}

// frameIndex is a coarse build proxy: weight in kg over height in meters
func frameIndex(heightCM, weightKG float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	return weightKG / (heightCM / 100)
}

// bodyValues fills missing height/weight with the gender defaults
func bodyValues(user *domain.Measurements, gender domain.Gender) (heightCM, weightKG float64) {
	g := gender
	if g != domain.GenderMale && g != domain.GenderFemale {
		g = domain.GenderUnknown
	}
	heightCM = defaultHeightCM[g]
	weightKG = defaultWeightKG[g]
	if user != nil && user.HeightCM != nil {
		heightCM = *user.HeightCM
	}
	if user != nil && user.WeightKG != nil {
		weightKG = *user.WeightKG
	}
	return heightCM, weightKG
}

// bandGender collapses unknown onto the male tables, which cover the wider band
func bandGender(gender domain.Gender) domain.Gender {
	if gender == domain.GenderFemale {
		return domain.GenderFemale
	}
	return domain.GenderMale
}

// sizeForBands returns the size of the first band the value falls under
func sizeForBands(bands []frameBand, value float64, fallback int) int {
	for _, band := range bands {
		if value < band.below {
			return band.size
		}
	}
	return fallback
}

// DeriveEUSize estimates an EU numeric size from body proportions
func DeriveEUSize(heightCM, weightKG float64, gender domain.Gender) int {
	g := bandGender(gender)
	fi := frameIndex(heightCM, weightKG)

	var size int
	if g == domain.GenderFemale {
		size = sizeForBands(euFemaleBands, fi, euFemaleDefault)
	} else {
		size = sizeForBands(euMaleBands, fi, euMaleDefault)
	}

	thresholds := euTallThresholds[g]
	if heightCM >= thresholds[0] {
		size += 2
	}
	if heightCM >= thresholds[1] {
		size += 2
	}

	return clampInt(size, euSizeFloor[g], euSizeCeiling[g])
}

// DeriveCollarSize estimates a shirt collar size from body proportions
func DeriveCollarSize(heightCM, weightKG float64) int {
	size := sizeForBands(collarWeightBands, weightKG, collarDefault)
	if heightCM >= collarTallHeight {
		size++
	} else if heightCM < collarShortHeight {
		size--
	}
	return clampInt(size, collarBandMin, collarBandMax)
}

// DeriveAlphaSize estimates an alpha size token from body proportions
func DeriveAlphaSize(heightCM, weightKG float64, gender domain.Gender) string {
	fi := frameIndex(heightCM, weightKG)

	var rank int
	if bandGender(gender) == domain.GenderFemale {
		rank = sizeForBands(alphaFemaleBands, fi, alphaDefaultRank)
	} else {
		rank = sizeForBands(alphaMaleBands, fi, alphaDefaultRank)
	}

	return domain.AlphaRanks[rank]
}

// DeriveWaistSize estimates a waist size in inches from body proportions
func DeriveWaistSize(heightCM, weightKG float64, gender domain.Gender) int {
	var size int
	if bandGender(gender) == domain.GenderFemale {
		size = sizeForBands(waistFemaleBands, weightKG, waistFemaleDefault)
		if heightCM >= waistFemaleTallHeight {
			size++
		} else if heightCM < waistFemaleShortHeight {
			size--
		}
	} else {
		size = sizeForBands(waistMaleBands, weightKG, waistMaleDefault)
		if heightCM >= waistMaleTallHeight {
			size++
		} else if heightCM < waistMaleShortHeight {
			size--
		}
	}
	return clampInt(size, waistFloor, waistCeiling)
}

// ResolveLength buckets a height into short/standard/long against the
// gender-specific breakpoints; absent height defaults to standard
func ResolveLength(heightCM *float64, gender domain.Gender) domain.Length {
	if heightCM == nil {
		return domain.LengthStandard
	}

	breakpoints, ok := lengthBreakpoints[gender]
	if !ok {
		breakpoints = lengthBreakpoints[domain.GenderUnknown]
	}

	switch {
	case *heightCM < breakpoints[0]:
		return domain.LengthShort
	case *heightCM <= breakpoints[1]:
		return domain.LengthStandard
	}
	return domain.LengthLong
}

// clampInt bounds v to [floor, ceiling]
func clampInt(v, floor, ceiling int) int {
	if v < floor {
		return floor
	}
	if v > ceiling {
		return ceiling
	}
	return v
}
