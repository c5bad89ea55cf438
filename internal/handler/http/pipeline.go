package http

import (
	"log/slog"
	"net/http"

	"github.com/LechDutkiewicz/gsport-ai/internal/service"
	"github.com/LechDutkiewicz/gsport-ai/pkg/httputil"
	"github.com/LechDutkiewicz/gsport-ai/pkg/validator"
)

// PipelineHandler handles the generation and update endpoints.
type PipelineHandler struct {
	service *service.Service
	logger  *slog.Logger
}

// NewPipelineHandler creates a new pipeline HTTP handler.
func NewPipelineHandler(svc *service.Service, logger *slog.Logger) *PipelineHandler {
	return &PipelineHandler{
		service: svc,
		logger:  logger,
	}
}

// GenerateRequest selects the product category for prompt selection.
type GenerateRequest struct {
	IsBike bool `json:"is_bike"`
}

// UpdateRequest optionally lists near-duplicate listings to update with the
// same snapshot, in addition to the loaded product.
type UpdateRequest struct {
	ExtraProductIDs []string `json:"extra_product_ids" validate:"omitempty,dive,numeric"`
}

// Generate handles POST /api/v1/product/generate
func (h *PipelineHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.GenerateDescriptions(r.Context(), req.IsBike)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// Update handles POST /api/v1/product/update
func (h *PipelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	result, err := h.service.UpdateProducts(r.Context(), req.ExtraProductIDs)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// PreviewXML handles GET /api/v1/product/xml. The extra query parameter may
// repeat to preview a batch document.
func (h *PipelineHandler) PreviewXML(w http.ResponseWriter, r *http.Request) {
	extraIDs := r.URL.Query()["extra"]

	doc, err := h.service.PreviewXML(extraIDs)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
