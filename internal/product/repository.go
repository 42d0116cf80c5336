package product

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Repository is the read-only source of the storefront's products.
type Repository interface {
	// FindAll returns every product in display order. It never returns a
	// nil slice without an error.
	FindAll(ctx context.Context) ([]model.Product, error)
}
