package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/fitform/backend/internal/domain"
)

// Compiled regex patterns for measurement extraction. Number spans claimed by
// an explicit pattern are excluded from the bare-number pass below.
var (
	// Single letters like "m" are only alpha tokens as standalone words; an
	// apostrophe prefix ("I'm") does not count as a boundary.
	alphaTokenRegex = regexp.MustCompile(`(?i)(?:^|[^a-z0-9'])(xxxl|xxl|xxs|xl|xs|extra\s+small|extra\s+large|small|medium|large|s|m|l)\b`)
	waistTokenRegex = regexp.MustCompile(`(?i)\b(?:w\s*(\d{2})|(\d{2})\s*w)\b`)
	heightUnitRegex = regexp.MustCompile(`(?i)\b(\d{2,3}(?:[.,]\d+)?)\s*cm\b`)
	weightUnitRegex = regexp.MustCompile(`(?i)\b(\d{2,3}(?:[.,]\d+)?)\s*kg\b`)
	euPhraseRegex   = regexp.MustCompile(`(?i)\b(?:eu|size)\s*\.?\s*(\d{2})\b`)
	collarRegex     = regexp.MustCompile(`(?i)\b(?:shirt|collar)\s*(?:size\s*)?(\d{2})\b`)
	bareNumberRegex = regexp.MustCompile(`\b\d{2,3}(?:[.,]\d+)?\b`)
)

// alphaWordAliases maps spelled-out alpha sizes to their canonical tokens
var alphaWordAliases = map[string]string{
	"SMALL":       "S",
	"MEDIUM":      "M",
	"LARGE":       "L",
	"EXTRA SMALL": "XS",
	"EXTRA LARGE": "XL",
}

// Bare-number ranges. Height claims first, then the active schema's size band,
// then weight; leftovers are reported as ambiguous.
const (
	bareHeightMin = 140
	bareHeightMax = 210
	bareWeightMin = 40
	bareWeightMax = 180

	bareEUSizeMin = 34
	bareEUSizeMax = 60
	bareWaistMin  = 24
	bareWaistMax  = 48
)

// MeasurementParser extracts structured measurements from free-form user text.
// It never fails; fields it cannot resolve stay nil and the caller re-prompts.
type MeasurementParser struct {
	enableDebugLogging bool
}

// NewMeasurementParser creates a new measurement parser
func NewMeasurementParser(enableDebugLogging bool) *MeasurementParser {
	return &MeasurementParser{enableDebugLogging: enableDebugLogging}
}

// Parse extracts measurements from text, using the schema to disambiguate bare
// numbers. A nil schema restricts the bare-number pass to height and weight.
func (p *MeasurementParser) Parse(text string, schema *domain.Schema) domain.ParseResult {
	var result domain.ParseResult
	if strings.TrimSpace(text) == "" {
		return result
	}

	claimed := newSpanSet()

	// 1. Alpha token
	if loc := alphaTokenRegex.FindStringSubmatchIndex(text); loc != nil {
		token := canonicalAlpha(text[loc[2]:loc[3]])
		if token != "" {
			result.AlphaSize = &token
			claimed.add(loc[0], loc[1])
		}
	}

	// 2. Waist token (W30 / 30W)
	if m := waistTokenRegex.FindStringSubmatchIndex(text); m != nil {
		digits := submatch(text, m, 1)
		if digits == "" {
			digits = submatch(text, m, 2)
		}
		if n, err := strconv.Atoi(digits); err == nil {
			result.WaistInch = &n
			claimed.add(m[0], m[1])
		}
	}

	// 3. Explicit unit numbers
	if m := heightUnitRegex.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseDecimal(submatch(text, m, 1)); ok {
			result.HeightCM = &v
			claimed.add(m[0], m[1])
		}
	}
	if m := weightUnitRegex.FindStringSubmatchIndex(text); m != nil {
		if v, ok := parseDecimal(submatch(text, m, 1)); ok {
			result.WeightKG = &v
			claimed.add(m[0], m[1])
		}
	}

	// 4. Explicit size phrases
	if m := euPhraseRegex.FindStringSubmatchIndex(text); m != nil {
		if n, err := strconv.Atoi(submatch(text, m, 1)); err == nil {
			result.UsualSizeEU = &n
			claimed.add(m[0], m[1])
		}
	}
	if m := collarRegex.FindStringSubmatchIndex(text); m != nil {
		if n, err := strconv.Atoi(submatch(text, m, 1)); err == nil {
			result.ShirtSizeEU = &n
			claimed.add(m[0], m[1])
		}
	}

	// 5. Remaining bare numbers, left to right
	for _, loc := range bareNumberRegex.FindAllStringIndex(text, -1) {
		if claimed.overlaps(loc[0], loc[1]) {
			continue
		}
		value, ok := parseDecimal(text[loc[0]:loc[1]])
		if !ok {
			continue
		}
		p.assignBareNumber(&result, schema, value)
	}

	// 6. Collar reconciliation: a bare or "size n" capture inside the collar
	// band belongs to shirt sizing when that is the active system
	if schema != nil && schema.System == domain.SystemShirtCollarEU &&
		result.ShirtSizeEU == nil && result.UsualSizeEU != nil &&
		*result.UsualSizeEU >= collarBandMin && *result.UsualSizeEU <= collarBandMax {
		result.ShirtSizeEU = result.UsualSizeEU
		result.UsualSizeEU = nil
	}

	if p.enableDebugLogging {
		log.Printf("[PARSE] %q -> height=%v weight=%v eu=%v collar=%v alpha=%v waist=%v ambiguous=%v",
			text, deref(result.HeightCM), deref(result.WeightKG),
			derefInt(result.UsualSizeEU), derefInt(result.ShirtSizeEU),
			derefStr(result.AlphaSize), derefInt(result.WaistInch), result.AmbiguousNumbers)
	}

	return result
}

// assignBareNumber routes an unclaimed bare number to the first open slot:
// height range, then the schema's size band, then weight; otherwise ambiguous.
func (p *MeasurementParser) assignBareNumber(result *domain.ParseResult, schema *domain.Schema, value float64) {
	if result.HeightCM == nil && value >= bareHeightMin && value <= bareHeightMax {
		result.HeightCM = &value
		return
	}

	n := int(value)
	if schema != nil && float64(n) == value {
		switch schema.System {
		case domain.SystemShirtCollarEU:
			if result.ShirtSizeEU == nil && n >= collarBandMin && n <= collarBandMax {
				result.ShirtSizeEU = &n
				return
			}
		case domain.SystemWaistInch:
			if result.WaistInch == nil && n >= bareWaistMin && n <= bareWaistMax {
				result.WaistInch = &n
				return
			}
		case domain.SystemEUNumeric:
			if result.UsualSizeEU == nil && n >= bareEUSizeMin && n <= bareEUSizeMax {
				result.UsualSizeEU = &n
				return
			}
		}
	}

	if result.WeightKG == nil && value >= bareWeightMin && value <= bareWeightMax {
		result.WeightKG = &value
		return
	}

	result.AmbiguousNumbers = append(result.AmbiguousNumbers, n)
}

// canonicalAlpha normalizes an alpha capture ("xl", "extra  large") to its
// canonical uppercase token, or "" when unrecognized
func canonicalAlpha(capture string) string {
	token := strings.ToUpper(strings.Join(strings.Fields(capture), " "))
	if alias, ok := alphaWordAliases[token]; ok {
		return alias
	}
	if domain.AlphaRank(token) >= 0 {
		return token
	}
	return ""
}

// parseDecimal parses a number that may use a comma decimal separator
func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// submatch extracts capture group n from a FindStringSubmatchIndex result
func submatch(text string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}

// spanSet tracks claimed byte ranges so bare-number scanning skips numbers
// already assigned by an explicit pattern
type spanSet struct {
	spans [][2]int
}

func newSpanSet() *spanSet {
	return &spanSet{}
}

func (s *spanSet) add(start, end int) {
	s.spans = append(s.spans, [2]int{start, end})
}

func (s *spanSet) overlaps(start, end int) bool {
	for _, span := range s.spans {
		if start < span[1] && end > span[0] {
			return true
		}
	}
	return false
}

func deref(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func derefInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func derefStr(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
