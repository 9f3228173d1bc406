package usecase

import (
	"regexp"
	"strings"

	"github.com/fitform/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var nonLetterRegex = regexp.MustCompile(`[^a-z0-9]+`)

// femaleTokens are explicit female garment markers across storefront languages
var femaleTokens = map[string]bool{
	"women": true, "womens": true, "woman": true, "female": true,
	"ladies": true, "lady": true, "dame": true, "damen": true,
	"femme": true, "mujer": true, "donna": true, "girl": true, "girls": true,
}

// maleTokens are explicit male garment markers. Checked after femaleTokens so
// that "women" never resolves through its "men" substring.
var maleTokens = map[string]bool{
	"men": true, "mens": true, "man": true, "male": true,
	"gent": true, "gents": true, "herren": true, "herr": true,
	"homme": true, "hombre": true, "uomo": true, "boy": true, "boys": true,
}

// categoryRule maps a keyword to a garment category. Rules are evaluated in
// order and the first match wins, so specific terms ("overshirt", "t-shirt")
// must precede the broad ones ("shirt", "top").
type categoryRule struct {
	keyword  string
	category domain.Category
}

var categoryRules = []categoryRule{
	{"overshirt", domain.CategoryShirt},
	{"t-shirt", domain.CategoryTShirt},
	{"tshirt", domain.CategoryTShirt},
	{"sweatshirt", domain.CategoryTop},
	{"hoodie", domain.CategoryTop},
	{"polo", domain.CategoryTShirt},
	{"knit", domain.CategoryKnit},
	{"sweater", domain.CategoryKnit},
	{"pullover", domain.CategoryKnit},
	{"cardigan", domain.CategoryKnit},
	{"jumper", domain.CategoryKnit},
	{"blouse", domain.CategoryBlouse},
	{"shirt", domain.CategoryShirt},
	{"trouser", domain.CategoryTrouser},
	{"pant", domain.CategoryTrouser},
	{"chino", domain.CategoryTrouser},
	{"jean", domain.CategoryTrouser},
	{"denim", domain.CategoryTrouser},
	{"blazer", domain.CategoryJacket},
	{"jacket", domain.CategoryJacket},
	{"parka", domain.CategoryCoat},
	{"overcoat", domain.CategoryCoat},
	{"coat", domain.CategoryCoat},
	{"dress", domain.CategoryDress},
	{"skirt", domain.CategorySkirt},
	{"short", domain.CategoryBottom},
	{"bottom", domain.CategoryBottom},
	{"top", domain.CategoryTop},
}

// ClassifyGender infers the garment target gender from the product's free text
// fields. Explicit tokens win; the handle prefix convention ("woman-"/"man-")
// is the fallback. Deterministic given identical text.
func ClassifyGender(product *domain.Product) domain.Gender {
	if product == nil {
		return domain.GenderUnknown
	}

	for _, token := range classifierTokens(product) {
		if femaleTokens[token] {
			return domain.GenderFemale
		}
	}
	for _, token := range classifierTokens(product) {
		if maleTokens[token] {
			return domain.GenderMale
		}
	}

	handle := strings.ToLower(product.Handle)
	if strings.HasPrefix(handle, "woman-") {
		return domain.GenderFemale
	}
	if strings.HasPrefix(handle, "man-") {
		return domain.GenderMale
	}

	return domain.GenderUnknown
}

// ClassifyCategory infers the garment category by ordered keyword precedence
// over the product's concatenated text. First match wins.
func ClassifyCategory(product *domain.Product) domain.Category {
	if product == nil {
		return domain.CategoryUnknown
	}

	text := strings.ToLower(classifierText(product))
	for _, rule := range categoryRules {
		if strings.Contains(text, rule.keyword) {
			return rule.category
		}
	}

	return domain.CategoryUnknown
}

// classifierText concatenates every free-text field the classifier inspects
func classifierText(product *domain.Product) string {
	parts := []string{product.Title, product.Handle, product.Type}
	parts = append(parts, product.Tags...)
	return strings.Join(parts, " ")
}

// classifierTokens splits the classifier text into normalized lowercase tokens
func classifierTokens(product *domain.Product) []string {
	cleaned := nonLetterRegex.ReplaceAllString(strings.ToLower(classifierText(product)), " ")
	return strings.Fields(cleaned)
}
