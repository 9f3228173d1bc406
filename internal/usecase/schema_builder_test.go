package usecase

import (
	"reflect"
	"testing"

	"github.com/fitform/backend/internal/domain"
)

func TestSchemaForGeneral(t *testing.T) {
	testCases := []struct {
		name         string
		gender       domain.Gender
		category     domain.Category
		wantSystem   domain.SizeSystem
		wantRequired []domain.InputField
	}{
		{
			name:       "mens shirt uses collar sizing",
			gender:     domain.GenderMale,
			category:   domain.CategoryShirt,
			wantSystem: domain.SystemShirtCollarEU,
			wantRequired: []domain.InputField{
				domain.FieldHeightCM, domain.FieldWeightKG, domain.FieldShirtSizeEU,
			},
		},
		{
			name:       "womens shirt uses eu numeric",
			gender:     domain.GenderFemale,
			category:   domain.CategoryShirt,
			wantSystem: domain.SystemEUNumeric,
			wantRequired: []domain.InputField{
				domain.FieldHeightCM, domain.FieldWeightKG, domain.FieldUsualSizeEU,
			},
		},
		{
			name:       "trousers use eu numeric",
			gender:     domain.GenderMale,
			category:   domain.CategoryTrouser,
			wantSystem: domain.SystemEUNumeric,
			wantRequired: []domain.InputField{
				domain.FieldHeightCM, domain.FieldWeightKG, domain.FieldUsualSizeEU,
			},
		},
		{
			name:       "unknown gender defaults to eu numeric",
			gender:     domain.GenderUnknown,
			category:   domain.CategoryUnknown,
			wantSystem: domain.SystemEUNumeric,
			wantRequired: []domain.InputField{
				domain.FieldHeightCM, domain.FieldWeightKG, domain.FieldUsualSizeEU,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schema := SchemaForGeneral(tc.gender, tc.category)
			if schema.System != tc.wantSystem {
				t.Errorf("System = %v, want %v", schema.System, tc.wantSystem)
			}
			if !reflect.DeepEqual(schema.Required, tc.wantRequired) {
				t.Errorf("Required = %v, want %v", schema.Required, tc.wantRequired)
			}
			if schema.Gender != tc.gender || schema.Category != tc.category {
				t.Errorf("gender/category = %v/%v, want %v/%v",
					schema.Gender, schema.Category, tc.gender, tc.category)
			}
		})
	}
}

func TestDetectSizeSchemaFromProduct(t *testing.T) {
	t.Run("returns nil for nil product", func(t *testing.T) {
		if schema := DetectSizeSchemaFromProduct(nil); schema != nil {
			t.Errorf("schema = %v, want nil", schema)
		}
	})

	t.Run("waist tokens win over everything", func(t *testing.T) {
		product := &domain.Product{
			Title:   "Men's Selvedge Jeans",
			Options: []string{"Size", "Color"},
			Variants: []domain.Variant{
				{Option1: "W30", Option2: "Indigo"},
				{Option1: "W32", Option2: "Indigo"},
				{Option1: "W34", Option2: "Indigo"},
			},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemWaistInch {
			t.Fatalf("System = %v, want waist_inch", schema.System)
		}
		if !reflect.DeepEqual(schema.AvailableNumeric, []int{30, 32, 34}) {
			t.Errorf("AvailableNumeric = %v, want [30 32 34]", schema.AvailableNumeric)
		}
		if len(schema.Notes) == 0 {
			t.Error("expected a diagnostic note for the system override")
		}
	})

	t.Run("suffix waist tokens detected", func(t *testing.T) {
		product := &domain.Product{
			Title:    "Chino Pants",
			Options:  []string{"Size"},
			Variants: []domain.Variant{{Option1: "30W"}, {Option1: "33W"}},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemWaistInch {
			t.Errorf("System = %v, want waist_inch", schema.System)
		}
	})

	t.Run("collar band numerics on a mens shirt", func(t *testing.T) {
		product := &domain.Product{
			Title:   "Men's Oxford Shirt",
			Options: []string{"Größe"},
			Variants: []domain.Variant{
				{Option1: "39"}, {Option1: "41"}, {Option1: "43"},
			},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemShirtCollarEU {
			t.Fatalf("System = %v, want shirt_collar_eu", schema.System)
		}
		if !reflect.DeepEqual(schema.AvailableNumeric, []int{39, 41, 43}) {
			t.Errorf("AvailableNumeric = %v, want [39 41 43]", schema.AvailableNumeric)
		}
	})

	t.Run("tailoring band overrides collar for mens shirts", func(t *testing.T) {
		product := &domain.Product{
			Title:   "Men's Tailored Shirt",
			Options: []string{"Size"},
			Variants: []domain.Variant{
				{Option1: "44"}, {Option1: "46"}, {Option1: "48"}, {Option1: "50"},
			},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemEUNumeric {
			t.Fatalf("System = %v, want eu_numeric", schema.System)
		}
		if !reflect.DeepEqual(schema.Required, []domain.InputField{
			domain.FieldHeightCM, domain.FieldWeightKG, domain.FieldUsualSizeEU,
		}) {
			t.Errorf("Required = %v, want usual_size_eu as size field", schema.Required)
		}
		if len(schema.Notes) == 0 {
			t.Error("expected a diagnostic note for the tailoring override")
		}
	})

	t.Run("tailoring band entirely inside collar overlap still reads eu", func(t *testing.T) {
		product := &domain.Product{
			Title:    "Men's Tailored Shirt",
			Options:  []string{"Size"},
			Variants: []domain.Variant{{Option1: "44"}, {Option1: "46"}},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemEUNumeric {
			t.Errorf("System = %v, want eu_numeric", schema.System)
		}
	})

	t.Run("alpha tokens", func(t *testing.T) {
		product := &domain.Product{
			Title:   "Women's Knit Sweater",
			Options: []string{"Talla"},
			Variants: []domain.Variant{
				{Option1: "L"}, {Option1: "S"}, {Option1: "M"}, {Option1: "XL"},
			},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemAlpha {
			t.Fatalf("System = %v, want alpha", schema.System)
		}
		if !reflect.DeepEqual(schema.AvailableAlpha, []string{"S", "M", "L", "XL"}) {
			t.Errorf("AvailableAlpha = %v, want rank order [S M L XL]", schema.AvailableAlpha)
		}
	})

	t.Run("generic numerics fall back to eu numeric", func(t *testing.T) {
		product := &domain.Product{
			Title:   "Women's Midi Dress",
			Options: []string{"Size"},
			Variants: []domain.Variant{
				{Option1: "36"}, {Option1: "38"}, {Option1: "40"}, {Option1: "42"},
			},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemEUNumeric {
			t.Errorf("System = %v, want eu_numeric", schema.System)
		}
		if !reflect.DeepEqual(schema.AvailableNumeric, []int{36, 38, 40, 42}) {
			t.Errorf("AvailableNumeric = %v", schema.AvailableNumeric)
		}
	})

	t.Run("no size option keeps general schema without availability", func(t *testing.T) {
		product := &domain.Product{
			Title:    "Men's Oxford Shirt",
			Options:  []string{"Color"},
			Variants: []domain.Variant{{Option1: "Blue"}, {Option1: "White"}},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if schema.System != domain.SystemShirtCollarEU {
			t.Errorf("System = %v, want shirt_collar_eu from general rules", schema.System)
		}
		if schema.AvailableNumeric != nil || schema.AvailableAlpha != nil {
			t.Error("expected no availability snapshot")
		}
	})

	t.Run("duplicate variant sizes are deduplicated and sorted", func(t *testing.T) {
		product := &domain.Product{
			Title:   "Pleated Trousers",
			Options: []string{"Size", "Length"},
			Variants: []domain.Variant{
				{Option1: "50"}, {Option1: "46"}, {Option1: "50"}, {Option1: "48"},
			},
		}

		schema := DetectSizeSchemaFromProduct(product)
		if !reflect.DeepEqual(schema.AvailableNumeric, []int{46, 48, 50}) {
			t.Errorf("AvailableNumeric = %v, want [46 48 50]", schema.AvailableNumeric)
		}
	})
}
