package quote

import (
	"context"
	"fmt"

	catalogRepo "homely/database/repository/catalog"
	"homely/models"
	"homely/services/pricing"
)

// QuoteService turns a quote request into a priced response.
type QuoteService interface {
	Quote(ctx context.Context, req models.QuoteRequest) (*models.QuoteResponse, error)
}

// DefaultQuoteService resolves the service definition (inline or from the
// catalog) and prices it with the engine.
type DefaultQuoteService struct {
	Engine      *pricing.Engine
	CatalogRepo catalogRepo.CatalogRepository
}

// QuoteError flags requests that cannot be priced at all (no service to
// price against); pricing itself never errors.
type QuoteError struct {
	Code    string
	Message string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewQuoteError(msg string) error {
	return &QuoteError{
		Code:    "quoteError",
		Message: msg,
	}
}
