package service

import (
	"context"
	"log/slog"

	"github.com/LechDutkiewicz/gsport-ai/internal/client/gsport"
	"github.com/LechDutkiewicz/gsport-ai/internal/domain"
	"github.com/LechDutkiewicz/gsport-ai/internal/extract"
)

// LoadProduct resolves the operator's input to a product id, fetches the
// record, and repopulates the session wholesale. The previous session state
// is only discarded after a successful fetch and parse; a failed load leaves
// the prior state intact.
func (s *Service) LoadProduct(ctx context.Context, input string) (domain.Snapshot, error) {
	productID, err := gsport.ExtractProductID(input)
	if err != nil {
		return domain.Snapshot{}, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeouts.Fetch)
	defer cancel()

	record, err := s.storefront.FetchProduct(fetchCtx, productID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	parsed := extract.Parse(record.ProdOptions)

	s.session.Reset()
	s.session.SetProduct(domain.ProductData{
		ID:          productID,
		Name:        orDefault(record.ProdName, fallbackProductName),
		Description: orDefault(record.ProdDescLong, fallbackDescription),
		Image:       record.ProdImgSrc,
	})
	s.session.SetProducer(domain.ProducerData{
		Name:        record.PrdName,
		Logo:        record.PrdLogo,
		Description: record.PrdLinkText,
	})
	s.session.SetOptions(parsed.InfoOptions, parsed.Options)
	if parsed.Color != nil {
		s.session.SetColor(parsed.Color.Name, parsed.Color.RemoteID)
	}
	if parsed.HeightRange != nil {
		s.session.SetHeightRange(parsed.HeightRange.Min, parsed.HeightRange.Max)
	}

	s.logger.InfoContext(ctx, "product loaded",
		slog.String("product_id", productID),
		slog.String("producer", record.PrdName),
		slog.Int("info_options", len(parsed.InfoOptions)),
		slog.Int("options", len(parsed.Options)),
		slog.Bool("color_preselected", parsed.Color != nil),
		slog.Bool("height_preselected", parsed.HeightRange != nil),
	)

	return s.session.Snapshot(), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
