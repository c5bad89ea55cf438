package domain

// ProductData holds the product fields used for prompt assembly.
type ProductData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ProducerData holds the brand fields attached to a product.
type ProducerData struct {
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// SectionHTML returns the brand blurb appended to generated long descriptions.
// It is only derivable when both name and description are present.
func (p ProducerData) SectionHTML() string {
	if p.Name == "" || p.Description == "" {
		return ""
	}
	return "<h2>O marce " + p.Name + "</h2><p>" + p.Description + "</p>"
}

// ProductSpecifications holds the two independent specification payloads.
// Selection logic treats their presence as a binary signal.
type ProductSpecifications struct {
	JSON string `json:"json"`
	HTML string `json:"html"`
}

// GeneratedDescriptions holds the model output, editable by the operator
// before the update step. Last write wins.
type GeneratedDescriptions struct {
	Long  string `json:"long"`
	Short string `json:"short"`
}

// ProductParameters holds the dominant color selection.
// Color and ColorRemoteID are set both-or-neither.
type ProductParameters struct {
	Color         string `json:"color,omitempty"`
	ColorRemoteID string `json:"color_remote_id,omitempty"`
}

// HasColor reports whether a dominant color is currently selected.
func (p ProductParameters) HasColor() bool {
	return p.Color != "" && p.ColorRemoteID != ""
}
