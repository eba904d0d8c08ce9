package quote

import (
	"context"
	"fmt"

	"homely/models"
	"homely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Quote prices one booking configuration. An inline service is used as-is;
// otherwise the catalog is consulted by ID. The returned total mirrors the
// breakdown's total for matching category details.
func (s *DefaultQuoteService) Quote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error) {
	logger := utils.GetLogger()

	svc := req.Service
	if svc == nil {
		if req.ServiceID == "" {
			return nil, NewQuoteError("either serviceId or an inline service is required")
		}
		loaded, err := s.CatalogRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			logger.Error("Quote: failed to load service from catalog",
				zap.String("serviceID", req.ServiceID), zap.Error(err))
			return nil, fmt.Errorf("failed to load service %s: %w", req.ServiceID, err)
		}
		svc = loaded
	}

	total := s.Engine.Quote(*svc, req.Configuration)
	breakdown := s.Engine.Breakdown(*svc, req.Configuration)

	currency := svc.Currency
	if currency == "" {
		currency = "NGN"
	}

	return &models.QuoteResponse{
		QuoteID:    uuid.New().String(),
		ServiceID:  svc.ID,
		Currency:   currency,
		TotalPrice: total,
		Breakdown:  breakdown,
	}, nil
}
