// Package storefront binds the catalog controller to browsing sessions and
// the shopper's persisted state.
package storefront

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingSession  = errors.New("missing session id")
	ErrSessionNotFound = errors.New("session not found")
)

// UseCase is the storefront API. View operations hand the resulting page to
// the renderer while the session is still locked, so what is rendered is
// exactly the state the operation produced.
type UseCase interface {
	OpenSession(ctx context.Context, r catalog.Renderer) (string, error)
	Search(ctx context.Context, sessionID, query string, r catalog.Renderer) error
	Sort(ctx context.Context, sessionID, key string, r catalog.Renderer) error
	FilterByPriceRange(ctx context.Context, sessionID string, lo, hi decimal.Decimal, r catalog.Renderer) error
	ChangePage(ctx context.Context, sessionID string, page int, r catalog.Renderer) (bool, error)
	SetPageSize(ctx context.Context, sessionID string, size int, r catalog.Renderer) (bool, error)
	GetPage(ctx context.Context, sessionID string, r catalog.Renderer) error

	GetProduct(ctx context.Context, sessionID string, productID int64) (*dto.ProductDetail, error)
	RecentlyViewed(ctx context.Context, sessionID string) ([]model.Product, error)
	AddToCart(ctx context.Context, sessionID string, productID int64) (*dto.CartView, error)
	GetCart(ctx context.Context, sessionID string) (*dto.CartView, error)
}
