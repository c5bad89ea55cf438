package service

import (
	"context"
	"log/slog"

	"github.com/LechDutkiewicz/gsport-ai/internal/audit"
	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
	"github.com/LechDutkiewicz/gsport-ai/internal/metrics"
	"github.com/LechDutkiewicz/gsport-ai/internal/xmlbuild"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// ProductUpdateStatus is the per-product outcome of an update pass.
type ProductUpdateStatus struct {
	ProductID string `json:"product_id"`
	Updated   bool   `json:"updated"`
	Response  string `json:"response,omitempty"`
	Error     string `json:"error,omitempty"`
}

// UpdateResult summarizes an update pass over one or more product ids.
type UpdateResult struct {
	Results      []ProductUpdateStatus `json:"results"`
	ProcessedIDs []string              `json:"processed_ids"`
}

// UpdateProducts posts the current session state to the storefront, one
// single-item XML document per product id. Updates are fire and forget: each
// product gets exactly one attempt, an audit copy is written for every
// attempt regardless of outcome, and one product failing does not stop the
// rest. Extra ids apply the same snapshot to near-duplicate listings.
func (s *Service) UpdateProducts(ctx context.Context, extraIDs []string) (*UpdateResult, error) {
	snap := s.session.Snapshot()
	if snap.Product.ID == "" {
		return nil, apperrors.InvalidInput("no product loaded")
	}
	if snap.Descriptions.Long == "" {
		return nil, apperrors.InvalidInput("no description to save")
	}

	ids := append([]string{snap.Product.ID}, extraIDs...)

	result := &UpdateResult{}
	for _, id := range ids {
		status := s.updateSingle(ctx, id, snap)
		result.Results = append(result.Results, status)
		if status.Updated {
			s.session.AddProcessedID(id)
		}
	}

	result.ProcessedIDs = s.session.Snapshot().ProcessedIDs
	return result, nil
}

func (s *Service) updateSingle(ctx context.Context, productID string, snap domain.Snapshot) ProductUpdateStatus {
	doc := xmlbuild.Build(productID, snap, s.now())

	updateCtx, cancel := context.WithTimeout(ctx, s.timeouts.Update)
	defer cancel()

	body, err := s.storefront.UpdateProduct(updateCtx, doc)

	auditStatus := audit.StatusOK
	if err != nil {
		auditStatus = audit.StatusErrors
	}
	if _, auditErr := s.audit.Save(doc, productID, auditStatus); auditErr != nil {
		s.logger.ErrorContext(ctx, "failed to write audit copy",
			slog.String("product_id", productID),
			slog.String("error", auditErr.Error()),
		)
	} else {
		metrics.AuditWritesTotal.WithLabelValues(string(auditStatus)).Inc()
	}

	if err != nil {
		metrics.UpdatesTotal.WithLabelValues(metrics.StatusError).Inc()
		s.logger.ErrorContext(ctx, "product update failed",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
		return ProductUpdateStatus{ProductID: productID, Error: err.Error()}
	}

	metrics.UpdatesTotal.WithLabelValues(metrics.StatusOK).Inc()
	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", productID),
		slog.String("response", body),
	)
	return ProductUpdateStatus{ProductID: productID, Updated: true, Response: body}
}

// PreviewXML builds the update document for the current session state
// without posting it. With extra ids a batch document is returned.
func (s *Service) PreviewXML(extraIDs []string) (string, error) {
	snap := s.session.Snapshot()
	if snap.Product.ID == "" {
		return "", apperrors.InvalidInput("no product loaded")
	}

	if len(extraIDs) == 0 {
		return xmlbuild.Build(snap.Product.ID, snap, s.now()), nil
	}
	ids := append([]string{snap.Product.ID}, extraIDs...)
	return xmlbuild.BuildBatch(ids, snap, s.now()), nil
}
