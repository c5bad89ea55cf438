package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LechDutkiewicz/gsport-ai/internal/prompt"
	"github.com/LechDutkiewicz/gsport-ai/pkg/httputil"
	"github.com/LechDutkiewicz/gsport-ai/pkg/validator"
)

// TemplateHandler exposes the prompt template editor endpoints.
type TemplateHandler struct {
	store  *prompt.Store
	logger *slog.Logger
}

// NewTemplateHandler creates a new template HTTP handler.
func NewTemplateHandler(store *prompt.Store, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		store:  store,
		logger: logger,
	}
}

// TemplateContent is the body for reading and writing a template.
type TemplateContent struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// PutTemplateRequest is the JSON request body for writing a template.
type PutTemplateRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListTemplates handles GET /api/v1/templates
func (h *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.store.List()})
}

// GetTemplate handles GET /api/v1/templates/{name}
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	content, err := h.store.Get(name)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: TemplateContent{Name: name, Content: content}})
}

// PutTemplate handles PUT /api/v1/templates/{name}
func (h *TemplateHandler) PutTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req PutTemplateRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := h.store.Put(name, req.Content); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: TemplateContent{Name: name, Content: req.Content}})
}
