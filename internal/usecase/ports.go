package usecase

import (
	"context"

	domain "github.com/RoshanShah43/rs-bazar/internal/entity"
)

// CatalogProvider is the external catalog service. GetProduct returns
// ok=false for an unknown id; adds against unknown products are no-ops.
type CatalogProvider interface {
	GetProduct(ctx context.Context, id string) (domain.Product, bool)
	ListProducts(ctx context.Context) map[string]domain.Product
}

// CartSnapshots persists the full cart of one scope (a buyer or guest) as
// a single document. Implementations must round-trip items field-for-field.
type CartSnapshots interface {
	Load(ctx context.Context, scope string) ([]domain.LineItem, error)
	Save(ctx context.Context, scope string, items []domain.LineItem) error
	Delete(ctx context.Context, scope string) error
}

// OrderSubmitter hands a finalized payload to the external order service.
// A non-nil error is a *domain.ServiceError carrying the upstream message.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, payload domain.OrderPayload) error
}
