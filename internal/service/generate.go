package service

import (
	"context"
	"log/slog"

	"github.com/LechDutkiewicz/gsport-ai/internal/htmlutil"
	"github.com/LechDutkiewicz/gsport-ai/internal/llm"
	"github.com/LechDutkiewicz/gsport-ai/internal/metrics"
	"github.com/LechDutkiewicz/gsport-ai/internal/prompt"

	apperrors "github.com/LechDutkiewicz/gsport-ai/pkg/errors"
)

// GenerateResult is the outcome of a full generation pass.
type GenerateResult struct {
	LongDescription     string  `json:"long_description"`
	ShortDescription    string  `json:"short_description"`
	Cost                float64 `json:"cost"`
	TemplateID          string  `json:"template"`
	UsedDefaultTemplate bool    `json:"used_default_template"`
}

// GenerateDescriptions runs the full pipeline: select and render the prompt,
// generate the long description, append the producer blurb, then derive the
// short description from the first bullet list. A long-description failure
// aborts the whole operation; a short-description failure is logged and the
// result is returned with only the long description.
func (s *Service) GenerateDescriptions(ctx context.Context, isBike bool) (*GenerateResult, error) {
	snap := s.session.Snapshot()
	if snap.Product.Name == "" {
		return nil, apperrors.InvalidInput("no product loaded")
	}

	templateID, payload := prompt.Select(isBike, snap.Producer.Name, snap.Specifications.JSON, snap.Specifications.HTML)
	rendered, usedDefault := s.renderer.Render(templateID, snap.Product.Name, snap.Product.Description, payload)

	longResult, err := s.generate(ctx, rendered)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(metrics.StatusError).Inc()
		return nil, err
	}

	longDescription := longResult.Content
	if section := snap.Producer.SectionHTML(); section != "" {
		longDescription += section
	}
	s.session.SetLongDescription(longDescription)

	totalCost := longResult.Cost
	result := &GenerateResult{
		LongDescription:     longDescription,
		TemplateID:          templateID,
		UsedDefaultTemplate: usedDefault,
	}

	// Short description is derived from the first bullet list of the long
	// description. No list means no short description, which is not an error.
	if firstList := htmlutil.FirstList(longDescription); firstList != "" {
		shortRendered, _ := s.renderer.Render(prompt.SelectShort(isBike), "", firstList, "")

		shortResult, err := s.generate(ctx, shortRendered)
		if err != nil {
			s.logger.WarnContext(ctx, "short description generation failed",
				slog.String("product_id", snap.Product.ID),
				slog.String("error", err.Error()),
			)
		} else {
			s.session.SetShortDescription(shortResult.Content)
			result.ShortDescription = shortResult.Content
			totalCost += shortResult.Cost
		}
	}

	result.Cost = totalCost
	metrics.GenerationsTotal.WithLabelValues(metrics.StatusOK).Inc()
	metrics.GenerationCostTotal.Add(totalCost)

	s.logger.InfoContext(ctx, "descriptions generated",
		slog.String("product_id", snap.Product.ID),
		slog.String("template", templateID),
		slog.Bool("default_template", usedDefault),
		slog.Bool("short_generated", result.ShortDescription != ""),
		slog.Float64("cost", totalCost),
	)

	return result, nil
}

func (s *Service) generate(ctx context.Context, renderedPrompt string) (*llm.Result, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeouts.Generate)
	defer cancel()

	res, err := s.generator.Generate(genCtx, renderedPrompt)
	if err != nil {
		return nil, err
	}

	metrics.TokensTotal.WithLabelValues(metrics.TokenKindPrompt).Add(float64(res.PromptTokens))
	metrics.TokensTotal.WithLabelValues(metrics.TokenKindCompletion).Add(float64(res.CompletionTokens))

	return res, nil
}
