package domain

// Product represents a normalized product record from the storefront platform.
// All fields are optional; absence degrades classification to "unknown".
type Product struct {
	Title    string    `json:"title,omitempty"`
	Handle   string    `json:"handle,omitempty"`
	Type     string    `json:"type,omitempty"`
	Vendor   string    `json:"vendor,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

// Variant carries up to three positional option values (e.g. size, color, fit)
type Variant struct {
	Option1 string `json:"option1,omitempty"`
	Option2 string `json:"option2,omitempty"`
	Option3 string `json:"option3,omitempty"`
}

// OptionAt returns the option value at the given zero-based position
func (v Variant) OptionAt(position int) string {
	switch position {
	case 0:
		return v.Option1
	case 1:
		return v.Option2
	case 2:
		return v.Option3
	}
	return ""
}
