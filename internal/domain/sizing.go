package domain

// SizeSystem identifies one of the supported garment sizing systems
type SizeSystem string

const (
	SystemEUNumeric     SizeSystem = "eu_numeric"      // continental numeric sizing, 34-60
	SystemShirtCollarEU SizeSystem = "shirt_collar_eu" // neck circumference, 37-46
	SystemAlpha         SizeSystem = "alpha"           // letter sizing, XXS-XXXL
	SystemWaistInch     SizeSystem = "waist_inch"      // denim-style waist inches, 24-48
)

// Gender is the garment target gender, not a statement about the wearer
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Category is the garment category inferred from product text
type Category string

const (
	CategoryShirt   Category = "shirt"
	CategoryTrouser Category = "trouser"
	CategoryJacket  Category = "jacket"
	CategoryCoat    Category = "coat"
	CategoryKnit    Category = "knit"
	CategoryDress   Category = "dress"
	CategorySkirt   Category = "skirt"
	CategoryBlouse  Category = "blouse"
	CategoryTShirt  Category = "tshirt"
	CategoryTop     Category = "top"
	CategoryBottom  Category = "bottom"
	CategoryUnknown Category = "unknown"
)

// Length is the body-length bucket attached to every recommendation
type Length string

const (
	LengthShort    Length = "short"
	LengthStandard Length = "standard"
	LengthLong     Length = "long"
)

// InputField names an atomic measurement the engine can require or report missing
type InputField string

const (
	FieldHeightCM    InputField = "height_cm"
	FieldWeightKG    InputField = "weight_kg"
	FieldUsualSizeEU InputField = "usual_size_eu"
	FieldShirtSizeEU InputField = "shirt_size_eu"
	FieldAlphaSize   InputField = "alpha_size"
	FieldWaistInch   InputField = "waist_inch"
)

// AlphaRanks is the fixed ordering of alpha sizes, smallest first
var AlphaRanks = []string{"XXS", "XS", "S", "M", "L", "XL", "XXL", "XXXL"}

// AlphaRank returns the position of an alpha token in AlphaRanks, or -1
// if the token is not a recognized alpha size. Matching is exact on the
// canonical uppercase form.
func AlphaRank(token string) int {
	for i, r := range AlphaRanks {
		if r == token {
			return i
		}
	}
	return -1
}

// SizeFieldFor maps a sizing system to the single input field that carries
// its size value. Exactly one size field is meaningful per schema.
func SizeFieldFor(system SizeSystem) InputField {
	switch system {
	case SystemShirtCollarEU:
		return FieldShirtSizeEU
	case SystemAlpha:
		return FieldAlphaSize
	case SystemWaistInch:
		return FieldWaistInch
	}
	return FieldUsualSizeEU
}

// Schema describes which sizing system applies to a product/context and which
// atomic inputs the caller should collect, in question order. Schemas are built
// fresh per lookup and never mutated afterwards.
type Schema struct {
	Gender   Gender       `json:"gender"`
	Category Category     `json:"category"`
	System   SizeSystem   `json:"system"`
	Required []InputField `json:"required"`

	// Variant-derived size candidates for this product, when known.
	// Numeric candidates are sorted ascending; alpha candidates by rank.
	AvailableNumeric []int    `json:"availableNumeric,omitempty"`
	AvailableAlpha   []string `json:"availableAlpha,omitempty"`

	// Diagnostic trail of detection overrides; non-functional
	Notes []string `json:"notes,omitempty"`
}

// Measurements is the accumulated user context. Partial records are valid;
// nil means unknown. Persistence across turns is owned by the caller.
type Measurements struct {
	HeightCM    *float64 `json:"height_cm,omitempty"`
	WeightKG    *float64 `json:"weight_kg,omitempty"`
	UsualSizeEU *int     `json:"usual_size_eu,omitempty"`
	ShirtSizeEU *int     `json:"shirt_size_eu,omitempty"`
	AlphaSize   *string  `json:"alpha_size,omitempty"`
	WaistInch   *int     `json:"waist_inch,omitempty"`
	Gender      Gender   `json:"gender,omitempty"`
}

// ParseResult is the partial measurement update extracted from free text.
// Bare numbers that could not be assigned to any field are reported, not dropped
// silently, so the caller can re-prompt.
type ParseResult struct {
	Measurements
	AmbiguousNumbers []int `json:"ambiguous_numbers,omitempty"`
}

// Recommendation is the engine output. Exactly one size field is populated,
// determined by System; the others stay nil.
type Recommendation struct {
	System   SizeSystem `json:"system"`
	Gender   Gender     `json:"gender"`
	Category Category   `json:"category"`
	Length   Length     `json:"length"`

	SizeEU    *int    `json:"size_eu,omitempty"`
	CollarEU  *int    `json:"collar_eu,omitempty"`
	AlphaSize *string `json:"alpha_size,omitempty"`
	WaistInch *int    `json:"waist_inch,omitempty"`

	UsedUsualAsAnchor bool `json:"used_usual_as_anchor"`
}
