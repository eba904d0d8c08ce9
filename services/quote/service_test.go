package quote

import (
	"context"
	"errors"
	"testing"

	"homely/models"
	"homely/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogRepo struct {
	services map[string]models.Service
}

func (s *stubCatalogRepo) Create(ctx context.Context, svc models.Service) (string, error) {
	return svc.ID, nil
}

func (s *stubCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &svc, nil
}

func (s *stubCatalogRepo) GetAll(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return nil, nil
}

func (s *stubCatalogRepo) GetByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	return nil, nil
}

func (s *stubCatalogRepo) Update(ctx context.Context, svc models.Service) error { return nil }
func (s *stubCatalogRepo) Delete(ctx context.Context, id string) error          { return nil }

func laundryRequest() models.QuoteRequest {
	return models.QuoteRequest{
		Configuration: models.ServiceConfiguration{
			ScheduledDays: []string{"2026-09-07", "2026-09-08"},
			Laundry:       &models.LaundryDetail{Bags: 2, LaundryType: models.LaundryWashAndFold},
		},
	}
}

func TestQuoteInlineService(t *testing.T) {
	svc := &DefaultQuoteService{Engine: pricing.NewDefaultEngine()}

	req := laundryRequest()
	req.Service = &models.Service{ID: "inline", Category: models.CategoryLaundry, Price: 1500}

	resp, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.QuoteID)
	assert.Equal(t, "NGN", resp.Currency)
	// 1500 * 2 bags * 2 days
	assert.InDelta(t, 6000, resp.TotalPrice, 1e-9)
	assert.Equal(t, resp.TotalPrice, resp.Breakdown.TotalPrice)
}

func TestQuoteCatalogLookup(t *testing.T) {
	repo := &stubCatalogRepo{services: map[string]models.Service{
		"svc-1": {ID: "svc-1", Category: models.CategoryLaundry, Price: 1500, Currency: "GHS"},
	}}
	svc := &DefaultQuoteService{Engine: pricing.NewDefaultEngine(), CatalogRepo: repo}

	req := laundryRequest()
	req.ServiceID = "svc-1"

	resp, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "svc-1", resp.ServiceID)
	assert.Equal(t, "GHS", resp.Currency)
	assert.InDelta(t, 6000, resp.TotalPrice, 1e-9)
}

func TestQuoteRequiresAService(t *testing.T) {
	svc := &DefaultQuoteService{Engine: pricing.NewDefaultEngine(), CatalogRepo: &stubCatalogRepo{}}

	_, err := svc.Quote(context.Background(), laundryRequest())
	require.Error(t, err)
	var qe *QuoteError
	assert.ErrorAs(t, err, &qe)
}

func TestQuoteUnknownCatalogService(t *testing.T) {
	svc := &DefaultQuoteService{Engine: pricing.NewDefaultEngine(), CatalogRepo: &stubCatalogRepo{}}

	req := laundryRequest()
	req.ServiceID = "missing"
	_, err := svc.Quote(context.Background(), req)
	require.Error(t, err)
}
