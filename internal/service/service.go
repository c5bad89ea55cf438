// Package service implements the business logic: loading products,
// generating descriptions, and pushing updates back to the storefront.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/LechDutkiewicz/gsport-ai/internal/audit"
	"github.com/LechDutkiewicz/gsport-ai/internal/client/gsport"
	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
	"github.com/LechDutkiewicz/gsport-ai/internal/llm"
	"github.com/LechDutkiewicz/gsport-ai/internal/prompt"
)

// Defaults substituted when the storefront record has empty display fields.
const (
	fallbackProductName = "Brak nazwy"
	fallbackDescription = "Brak opisu"
)

// Storefront is the product API surface the service depends on.
type Storefront interface {
	FetchProduct(ctx context.Context, productID string) (*gsport.ProductRecord, error)
	UpdateProduct(ctx context.Context, xmlPayload string) (string, error)
}

// Timeouts bounds each kind of upstream call.
type Timeouts struct {
	Fetch    time.Duration
	Generate time.Duration
	Update   time.Duration
}

// Service drives the description pipeline over a single operator session.
type Service struct {
	storefront Storefront
	generator  llm.Generator
	renderer   *prompt.Renderer
	session    *domain.Session
	audit      *audit.Writer
	timeouts   Timeouts
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the service.
func New(
	storefront Storefront,
	generator llm.Generator,
	renderer *prompt.Renderer,
	session *domain.Session,
	auditWriter *audit.Writer,
	timeouts Timeouts,
	logger *slog.Logger,
) *Service {
	return &Service{
		storefront: storefront,
		generator:  generator,
		renderer:   renderer,
		session:    session,
		audit:      auditWriter,
		timeouts:   timeouts,
		logger:     logger,
		now:        time.Now,
	}
}

// Session exposes the aggregate for handlers that mutate it directly.
func (s *Service) Session() *domain.Session {
	return s.session
}
