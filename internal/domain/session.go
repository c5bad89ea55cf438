package domain

import "sync"

// Session is the in-memory aggregate holding all state for the currently
// loaded product. It is the single owner of product-scoped state; handlers
// and the generation pipeline only read snapshots or call its mutators.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	product        ProductData
	producer       ProducerData
	specifications ProductSpecifications
	descriptions   GeneratedDescriptions
	parameters     ProductParameters
	heightRange    *HeightRange
	infoOptions    []OriginalOption
	options        []OriginalOption
	processedIDs   []string
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Product        ProductData           `json:"product"`
	Producer       ProducerData          `json:"producer"`
	Specifications ProductSpecifications `json:"specifications"`
	Descriptions   GeneratedDescriptions `json:"descriptions"`
	Parameters     ProductParameters     `json:"parameters"`
	HeightRange    *HeightRange          `json:"height_range,omitempty"`
	InfoOptions    []OriginalOption      `json:"info_options,omitempty"`
	Options        []OriginalOption      `json:"options,omitempty"`
	ProcessedIDs   []string              `json:"processed_ids,omitempty"`
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Product:        s.product,
		Producer:       s.producer,
		Specifications: s.specifications,
		Descriptions:   s.descriptions,
		Parameters:     s.parameters,
		InfoOptions:    append([]OriginalOption(nil), s.infoOptions...),
		Options:        append([]OriginalOption(nil), s.options...),
		ProcessedIDs:   append([]string(nil), s.processedIDs...),
	}
	if s.heightRange != nil {
		r := *s.heightRange
		snap.HeightRange = &r
	}
	return snap
}

// SetProduct replaces the loaded product wholesale.
func (s *Session) SetProduct(p ProductData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = p
}

// SetProducer replaces the producer data.
func (s *Session) SetProducer(p ProducerData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.producer = p
}

// Product returns the loaded product.
func (s *Session) Product() ProductData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.product
}

// SetJSONSpecification stores the JSON specification payload.
func (s *Session) SetJSONSpecification(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specifications.JSON = content
}

// SetHTMLSpecification stores the HTML specification payload.
func (s *Session) SetHTMLSpecification(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specifications.HTML = content
}

// SetLongDescription overwrites the long description.
func (s *Session) SetLongDescription(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.descriptions.Long = content
}

// SetShortDescription overwrites the short description.
func (s *Session) SetShortDescription(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.descriptions.Short = content
}

// SetColor selects the dominant color. Both fields must be non-empty;
// use ClearColor to deselect.
func (s *Session) SetColor(name, remoteID string) bool {
	if name == "" || remoteID == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parameters.Color = name
	s.parameters.ColorRemoteID = remoteID
	return true
}

// ClearColor deselects the dominant color.
func (s *Session) ClearColor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parameters = ProductParameters{}
}

// SetHeightRange stores a normalized height range. Returns false if either
// endpoint is not in the storefront height table.
func (s *Session) SetHeightRange(min, max int) bool {
	if !IsValidHeight(min) || !IsValidHeight(max) {
		return false
	}
	r := NewHeightRange(min, max)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heightRange = &r
	return true
}

// ClearHeightRange removes the stored height range.
func (s *Session) ClearHeightRange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heightRange = nil
}

// SetOptions replaces both passthrough option collections.
func (s *Session) SetOptions(infoOptions, options []OriginalOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infoOptions = append([]OriginalOption(nil), infoOptions...)
	s.options = append([]OriginalOption(nil), options...)
}

// AddProcessedID records a successfully updated product id, ignoring duplicates.
func (s *Session) AddProcessedID(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.processedIDs {
		if id == productID {
			return
		}
	}
	s.processedIDs = append(s.processedIDs, productID)
}

// Reset clears every field to its empty default. There is no partial reset.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = ProductData{}
	s.producer = ProducerData{}
	s.specifications = ProductSpecifications{}
	s.descriptions = GeneratedDescriptions{}
	s.parameters = ProductParameters{}
	s.heightRange = nil
	s.infoOptions = nil
	s.options = nil
	s.processedIDs = nil
}
