package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fitform/backend/internal/domain"
)

// Collar sizing band and the tailored-shirt numeric band. They overlap on
// 44-46; the tailoring override is consulted first for men's shirts.
const (
	collarBandMin = 37
	collarBandMax = 46

	tailoringBandMin = 44
	tailoringBandMax = 60
)

// sizeOptionNames matches the "size" option label across storefront languages
var sizeOptionNames = []string{
	"size", "größe", "grösse", "groesse", "taille", "talla",
	"taglia", "maat", "storlek", "størrelse", "размер",
}

// Package-level compiled regex patterns for size option values
var (
	waistValueRegex   = regexp.MustCompile(`(?i)^(?:w\s*(\d{2})|(\d{2})\s*w)$`)
	numericValueRegex = regexp.MustCompile(`^\d{2,3}$`)
)

// SchemaForGeneral returns the default schema for a bare gender+category pair,
// before any product variant data is consulted:
//   - men's shirts use collar sizing
//   - trousers and bottoms use EU numeric regardless of gender
//   - everything else, including unknown gender, defaults to EU numeric
func SchemaForGeneral(gender domain.Gender, category domain.Category) *domain.Schema {
	system := domain.SystemEUNumeric
	if gender == domain.GenderMale && category == domain.CategoryShirt {
		system = domain.SystemShirtCollarEU
	}

	return &domain.Schema{
		Gender:   gender,
		Category: category,
		System:   system,
		Required: requiredInputsFor(system),
	}
}

// DetectSizeSchemaFromProduct builds a product-aware schema: it classifies the
// product, starts from the general schema, then reclassifies the sizing system
// from the product's declared size option values. Returns nil when no product
// is supplied.
func DetectSizeSchemaFromProduct(product *domain.Product) *domain.Schema {
	return detectSchema(product, domain.GenderUnknown)
}

// detectSchema is DetectSizeSchemaFromProduct with a gender hint used when
// the product text carries no gender signal (e.g. the caller declared one).
func detectSchema(product *domain.Product, genderHint domain.Gender) *domain.Schema {
	if product == nil {
		return nil
	}

	gender := ClassifyGender(product)
	if gender == domain.GenderUnknown && genderHint != "" && genderHint != domain.GenderUnknown {
		gender = genderHint
	}
	category := ClassifyCategory(product)
	schema := SchemaForGeneral(gender, category)

	values := sizeOptionValues(product)
	if len(values) == 0 {
		return schema
	}

	waist, numerics, alphas := partitionSizeValues(values)

	// Pattern priority: waist tokens > collar-range numerics > alpha > EU numeric.
	switch {
	case len(waist) > 0:
		reclassify(schema, domain.SystemWaistInch, "size option values match waist tokens")
		schema.AvailableNumeric = sortedUnique(waist)

	case len(numerics) > 0:
		switch {
		case gender == domain.GenderMale && category == domain.CategoryShirt &&
			allWithin(numerics, tailoringBandMin, tailoringBandMax):
			// A tailored shirt sized 44-60, not collar sizing
			reclassify(schema, domain.SystemEUNumeric,
				fmt.Sprintf("numeric sizes in tailoring band %d-%d, treating as eu_numeric", tailoringBandMin, tailoringBandMax))
		case allWithin(numerics, collarBandMin, collarBandMax):
			reclassify(schema, domain.SystemShirtCollarEU,
				fmt.Sprintf("numeric sizes in collar band %d-%d", collarBandMin, collarBandMax))
		default:
			reclassify(schema, domain.SystemEUNumeric, "numeric size values")
		}
		schema.AvailableNumeric = sortedUnique(numerics)

	case len(alphas) > 0:
		reclassify(schema, domain.SystemAlpha, "size option values match alpha tokens")
		schema.AvailableAlpha = sortedAlpha(alphas)
	}

	return schema
}

// requiredInputsFor returns the ordered input list for a system. Order defines
// the question order downstream.
func requiredInputsFor(system domain.SizeSystem) []domain.InputField {
	return []domain.InputField{
		domain.FieldHeightCM,
		domain.FieldWeightKG,
		domain.SizeFieldFor(system),
	}
}

// reclassify switches the schema to the detected system, rebuilding the
// required inputs and recording a diagnostic note when anything changed
func reclassify(schema *domain.Schema, system domain.SizeSystem, reason string) {
	if schema.System == system {
		return
	}
	schema.Notes = append(schema.Notes,
		fmt.Sprintf("system %s -> %s: %s", schema.System, system, reason))
	schema.System = system
	schema.Required = requiredInputsFor(system)
}

// sizeOptionValues returns the deduplicated variant values of the product's
// size option, located by option-name heuristics
func sizeOptionValues(product *domain.Product) []string {
	position := -1
	for i, name := range product.Options {
		lowered := strings.ToLower(name)
		for _, candidate := range sizeOptionNames {
			if strings.Contains(lowered, candidate) {
				position = i
				break
			}
		}
		if position >= 0 {
			break
		}
	}
	if position < 0 {
		return nil
	}

	seen := make(map[string]bool)
	var values []string
	for _, variant := range product.Variants {
		value := strings.TrimSpace(variant.OptionAt(position))
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}

// partitionSizeValues splits raw option values into waist inches, plain
// numerics, and alpha tokens. Unrecognized values are ignored.
func partitionSizeValues(values []string) (waist []int, numerics []int, alphas []string) {
	for _, value := range values {
		if m := waistValueRegex.FindStringSubmatch(value); m != nil {
			digits := m[1]
			if digits == "" {
				digits = m[2]
			}
			if n, err := strconv.Atoi(digits); err == nil {
				waist = append(waist, n)
			}
			continue
		}
		if numericValueRegex.MatchString(value) {
			if n, err := strconv.Atoi(value); err == nil {
				numerics = append(numerics, n)
			}
			continue
		}
		token := strings.ToUpper(strings.TrimSpace(value))
		if domain.AlphaRank(token) >= 0 {
			alphas = append(alphas, token)
		}
	}
	return waist, numerics, alphas
}

// allWithin reports whether every value falls inside [min, max]
func allWithin(values []int, min, max int) bool {
	for _, v := range values {
		if v < min || v > max {
			return false
		}
	}
	return len(values) > 0
}

// sortedUnique returns the values deduplicated and sorted ascending
func sortedUnique(values []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// sortedAlpha returns alpha tokens deduplicated and sorted by rank
func sortedAlpha(tokens []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return domain.AlphaRank(out[i]) < domain.AlphaRank(out[j])
	})
	return out
}
