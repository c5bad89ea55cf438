package domain

// Parameter type tags as sent by the storefront API.
const (
	OptionTypeInfo   = "info"
	OptionTypeChoose = "choose"
	OptionTypeHidden = "hidden"
)

// ColorParamName is the storefront display name of the dominant color parameter.
const ColorParamName = "Kolor dominujący"

// OriginalOption is a storefront parameter value captured verbatim from the
// product API response and passed through unchanged on update. The Type field
// is kept only to re-emit "hidden" parameters with their marker.
type OriginalOption struct {
	Name     string `json:"name"`
	RemoteID string `json:"remote_id"`
	Value    string `json:"value"`
	Type     string `json:"type,omitempty"`
}
