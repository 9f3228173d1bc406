package usecase

import (
	"log"

	"github.com/fitform/backend/internal/domain"
)

// Validation sanity ranges. Violations are flagged, never fatal.
const (
	validHeightMin = 145
	validHeightMax = 205
	validWeightMin = 40
	validWeightMax = 180

	// weight/(height_m)^2 band for the proportion consistency check
	validBodyIndexMin = 15
	validBodyIndexMax = 40
)

// Gendered EU size sanity ranges
var euValidRange = map[domain.Gender][2]int{
	domain.GenderMale:    {44, 60},
	domain.GenderFemale:  {32, 54},
	domain.GenderUnknown: {34, 60},
}

// EngineConfig holds configuration for the recommendation service
type EngineConfig struct {
	EnableDebugLogging bool
}

// RecommendationService composes schema detection, parsing, derivation and
// availability clamping into garment size recommendations. It is stateless;
// every method is a pure transformation of its arguments.
type RecommendationService struct {
	parser             *MeasurementParser
	enableDebugLogging bool
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(config EngineConfig) *RecommendationService {
	return &RecommendationService{
		parser:             NewMeasurementParser(config.EnableDebugLogging),
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ParseUserInput extracts measurements from free-form user text, using the
// schema to disambiguate bare numbers
func (s *RecommendationService) ParseUserInput(text string, schema *domain.Schema) domain.ParseResult {
	return s.parser.Parse(text, schema)
}

// RecommendInput is the context for a product-aware recommendation
type RecommendInput struct {
	Product *domain.Product
	User    *domain.Measurements
	Gender  domain.Gender
}

// RecommendForProduct is the single entry point for the conversational flow:
// it builds a product-aware schema (falling back to a general one when product
// data is absent or undetectable), then recommends. Returns nil only when no
// user context is supplied at all.
func (s *RecommendationService) RecommendForProduct(input RecommendInput) *domain.Recommendation {
	if input.User == nil {
		return nil
	}

	schema := s.SchemaForInput(input)
	return s.Recommend(schema, input.User)
}

// SchemaForInput resolves the schema a RecommendInput implies, product-aware
// when possible
func (s *RecommendationService) SchemaForInput(input RecommendInput) *domain.Schema {
	gender := input.Gender
	if gender == "" {
		gender = domain.GenderUnknown
	}
	if gender == domain.GenderUnknown && input.User != nil && input.User.Gender != "" {
		gender = input.User.Gender
	}

	if schema := detectSchema(input.Product, gender); schema != nil {
		return schema
	}
	return SchemaForGeneral(gender, domain.CategoryUnknown)
}

// Recommend resolves a size for the schema's system: the user's usual size
// when present, a proportion-derived estimate otherwise. The result always
// carries a body-length bucket and is always snapped to the product's
// available sizes when the schema knows them. A nil schema falls back to the
// most generic one.
func (s *RecommendationService) Recommend(schema *domain.Schema, user *domain.Measurements) *domain.Recommendation {
	if schema == nil {
		schema = SchemaForGeneral(domain.GenderUnknown, domain.CategoryUnknown)
	}

	rec := &domain.Recommendation{
		System:   schema.System,
		Gender:   schema.Gender,
		Category: schema.Category,
	}

	var heightCM *float64
	if user != nil {
		heightCM = user.HeightCM
	}
	rec.Length = ResolveLength(heightCM, schema.Gender)

	height, weight := bodyValues(user, schema.Gender)

	switch schema.System {
	case domain.SystemShirtCollarEU:
		size, anchored := anchorInt(userField(user, domain.FieldShirtSizeEU))
		if !anchored {
			size = DeriveCollarSize(height, weight)
		}
		size = ClampToAvailable(size, schema.AvailableNumeric)
		rec.CollarEU = &size
		rec.UsedUsualAsAnchor = anchored

	case domain.SystemWaistInch:
		size, anchored := anchorInt(userField(user, domain.FieldWaistInch))
		if !anchored {
			size = DeriveWaistSize(height, weight, schema.Gender)
		}
		size = ClampToAvailable(size, schema.AvailableNumeric)
		rec.WaistInch = &size
		rec.UsedUsualAsAnchor = anchored

	case domain.SystemAlpha:
		var token string
		anchored := false
		if user != nil && user.AlphaSize != nil {
			if rank := domain.AlphaRank(*user.AlphaSize); rank >= 0 {
				token = domain.AlphaRanks[rank]
				anchored = true
			}
		}
		if !anchored {
			token = DeriveAlphaSize(height, weight, schema.Gender)
		}
		token = ClampAlphaToAvailable(token, schema.AvailableAlpha)
		rec.AlphaSize = &token
		rec.UsedUsualAsAnchor = anchored

	default:
		size, anchored := anchorInt(userField(user, domain.FieldUsualSizeEU))
		if !anchored {
			size = DeriveEUSize(height, weight, schema.Gender)
		}
		size = ClampToAvailable(size, schema.AvailableNumeric)
		rec.SizeEU = &size
		rec.UsedUsualAsAnchor = anchored
	}

	if s.enableDebugLogging {
		log.Printf("[RECOMMEND] system=%s gender=%s category=%s length=%s anchored=%v",
			rec.System, rec.Gender, rec.Category, rec.Length, rec.UsedUsualAsAnchor)
	}

	return rec
}

// GetMissingInputs walks the schema's required-input list and reports which
// fields the user context does not yet cover; the list order defines the
// question order for the caller.
func (s *RecommendationService) GetMissingInputs(schema *domain.Schema, user *domain.Measurements) []domain.InputField {
	if schema == nil {
		return nil
	}

	var missing []domain.InputField
	for _, field := range schema.Required {
		if !hasField(user, field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// ValidateAtomic runs range sanity checks over the user context and returns
// the violated field names. It never blocks computation, only flags.
func (s *RecommendationService) ValidateAtomic(schema *domain.Schema, user *domain.Measurements) []string {
	if user == nil {
		return nil
	}

	var issues []string

	if user.HeightCM != nil && (*user.HeightCM < validHeightMin || *user.HeightCM > validHeightMax) {
		issues = append(issues, string(domain.FieldHeightCM))
	}
	if user.WeightKG != nil && (*user.WeightKG < validWeightMin || *user.WeightKG > validWeightMax) {
		issues = append(issues, string(domain.FieldWeightKG))
	}

	if user.HeightCM != nil && user.WeightKG != nil && *user.HeightCM > 0 {
		meters := *user.HeightCM / 100
		bodyIndex := *user.WeightKG / (meters * meters)
		if bodyIndex < validBodyIndexMin || bodyIndex > validBodyIndexMax {
			issues = append(issues, "body_proportion")
		}
	}

	gender := domain.GenderUnknown
	if schema != nil {
		gender = schema.Gender
	}
	euRange, ok := euValidRange[gender]
	if !ok {
		euRange = euValidRange[domain.GenderUnknown]
	}

	if user.UsualSizeEU != nil && (*user.UsualSizeEU < euRange[0] || *user.UsualSizeEU > euRange[1]) {
		issues = append(issues, string(domain.FieldUsualSizeEU))
	}
	if user.ShirtSizeEU != nil && (*user.ShirtSizeEU < collarBandMin || *user.ShirtSizeEU > collarBandMax) {
		issues = append(issues, string(domain.FieldShirtSizeEU))
	}
	if user.WaistInch != nil && (*user.WaistInch < waistFloor || *user.WaistInch > waistCeiling) {
		issues = append(issues, string(domain.FieldWaistInch))
	}
	if user.AlphaSize != nil && domain.AlphaRank(*user.AlphaSize) < 0 {
		issues = append(issues, string(domain.FieldAlphaSize))
	}

	return issues
}

// userField returns the int-valued field from the user context, or nil
func userField(user *domain.Measurements, field domain.InputField) *int {
	if user == nil {
		return nil
	}
	switch field {
	case domain.FieldUsualSizeEU:
		return user.UsualSizeEU
	case domain.FieldShirtSizeEU:
		return user.ShirtSizeEU
	case domain.FieldWaistInch:
		return user.WaistInch
	}
	return nil
}

// anchorInt unwraps an optional anchor value
func anchorInt(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// hasField reports whether the user context covers an input field
func hasField(user *domain.Measurements, field domain.InputField) bool {
	if user == nil {
		return false
	}
	switch field {
	case domain.FieldHeightCM:
		return user.HeightCM != nil
	case domain.FieldWeightKG:
		return user.WeightKG != nil
	case domain.FieldUsualSizeEU:
		return user.UsualSizeEU != nil
	case domain.FieldShirtSizeEU:
		return user.ShirtSizeEU != nil
	case domain.FieldAlphaSize:
		return user.AlphaSize != nil
	case domain.FieldWaistInch:
		return user.WaistInch != nil
	}
	return false
}
