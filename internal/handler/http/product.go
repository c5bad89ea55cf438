package http

import (
	"log/slog"
	"net/http"

	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
	"github.com/LechDutkiewicz/gsport-ai/internal/service"
	"github.com/LechDutkiewicz/gsport-ai/pkg/httputil"
	"github.com/LechDutkiewicz/gsport-ai/pkg/validator"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// ProductHandler handles session state endpoints.
type ProductHandler struct {
	service *service.Service
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.Service, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// LoadProductRequest is the JSON request body for loading a product.
// Input accepts a Sky-Shop product URL or a bare numeric id.
type LoadProductRequest struct {
	Input string `json:"input" validate:"required"`
}

// SetSpecificationsRequest carries the operator-pasted specification payloads.
// Nil fields are left untouched; empty strings clear them.
type SetSpecificationsRequest struct {
	JSON *string `json:"json"`
	HTML *string `json:"html"`
}

// SetDescriptionsRequest carries operator edits of the generated descriptions.
type SetDescriptionsRequest struct {
	Long  *string `json:"long"`
	Short *string `json:"short"`
}

// SetColorRequest selects the dominant color.
type SetColorRequest struct {
	Name     string `json:"name" validate:"required"`
	RemoteID string `json:"remote_id" validate:"required,numeric"`
}

// SetHeightRangeRequest stores a height range in centimeters.
type SetHeightRangeRequest struct {
	Min int `json:"min" validate:"required"`
	Max int `json:"max" validate:"required"`
}

// --- Handlers ---

// LoadProduct handles POST /api/v1/product/load
func (h *ProductHandler) LoadProduct(w http.ResponseWriter, r *http.Request) {
	var req LoadProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	snap, err := h.service.LoadProduct(r.Context(), req.Input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: snap})
}

// GetSession handles GET /api/v1/product
func (h *ProductHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Session().Snapshot()})
}

// ResetSession handles POST /api/v1/product/reset
func (h *ProductHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.service.Session().Reset()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Session().Snapshot()})
}

// SetSpecifications handles PUT /api/v1/product/specifications
func (h *ProductHandler) SetSpecifications(w http.ResponseWriter, r *http.Request) {
	var req SetSpecificationsRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	session := h.service.Session()
	if req.JSON != nil {
		session.SetJSONSpecification(*req.JSON)
	}
	if req.HTML != nil {
		session.SetHTMLSpecification(*req.HTML)
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session.Snapshot()})
}

// SetDescriptions handles PUT /api/v1/product/descriptions
func (h *ProductHandler) SetDescriptions(w http.ResponseWriter, r *http.Request) {
	var req SetDescriptionsRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	session := h.service.Session()
	if req.Long != nil {
		session.SetLongDescription(*req.Long)
	}
	if req.Short != nil {
		session.SetShortDescription(*req.Short)
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session.Snapshot()})
}

// SetColor handles PUT /api/v1/product/color
func (h *ProductHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	var req SetColorRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if !h.service.Session().SetColor(req.Name, req.RemoteID) {
		httputil.WriteError(w, r, apperrors.InvalidInput("color name and remote id are both required"), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Session().Snapshot()})
}

// ClearColor handles DELETE /api/v1/product/color
func (h *ProductHandler) ClearColor(w http.ResponseWriter, r *http.Request) {
	h.service.Session().ClearColor()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Session().Snapshot()})
}

// SetHeightRange handles PUT /api/v1/product/height-range
func (h *ProductHandler) SetHeightRange(w http.ResponseWriter, r *http.Request) {
	var req SetHeightRangeRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if !h.service.Session().SetHeightRange(req.Min, req.Max) {
		httputil.WriteError(w, r,
			apperrors.InvalidInput("both endpoints must be available heights between 82 and 205 cm"), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Session().Snapshot()})
}

// ClearHeightRange handles DELETE /api/v1/product/height-range
func (h *ProductHandler) ClearHeightRange(w http.ResponseWriter, r *http.Request) {
	h.service.Session().ClearHeightRange()
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.service.Session().Snapshot()})
}

// HeightsResponse lists the valid heights and preset ranges for pickers.
type HeightsResponse struct {
	Available []int                   `json:"available"`
	Suggested []domain.SuggestedRange `json:"suggested"`
}

// ListHeights handles GET /api/v1/heights
func (h *ProductHandler) ListHeights(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: HeightsResponse{
		Available: domain.AvailableHeights(),
		Suggested: domain.SuggestedRanges(),
	}})
}
