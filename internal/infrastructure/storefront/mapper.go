package storefront

import (
	"strings"

	"github.com/fitform/backend/internal/domain"
)

// productPayload mirrors the platform's product JSON. Only the fields the
// sizing engine consumes are decoded; the payload carries much more.
type productPayload struct {
	Title    string           `json:"title"`
	Handle   string           `json:"handle"`
	Type     string           `json:"type"`
	Vendor   string           `json:"vendor"`
	Tags     []string         `json:"tags"`
	Options  []string         `json:"options"`
	Variants []variantPayload `json:"variants"`
}

type variantPayload struct {
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
}

// MapToProduct normalizes a platform payload into the domain product record
func MapToProduct(payload *productPayload) *domain.Product {
	product := &domain.Product{
		Title:  strings.TrimSpace(payload.Title),
		Handle: strings.TrimSpace(payload.Handle),
		Type:   strings.TrimSpace(payload.Type),
		Vendor: strings.TrimSpace(payload.Vendor),
	}

	for _, tag := range payload.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			product.Tags = append(product.Tags, trimmed)
		}
	}

	for _, name := range payload.Options {
		product.Options = append(product.Options, strings.TrimSpace(name))
	}

	for _, v := range payload.Variants {
		product.Variants = append(product.Variants, domain.Variant{
			Option1: strings.TrimSpace(v.Option1),
			Option2: strings.TrimSpace(v.Option2),
			Option3: strings.TrimSpace(v.Option3),
		})
	}

	return product
}
