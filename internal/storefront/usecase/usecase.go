package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/events"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/metrics"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/shopper"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/session"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type storefrontUseCase struct {
	sessions  *session.Registry
	recent    *shopper.RecentViews
	carts     *shopper.Carts
	views     *shopper.Views
	publisher events.Publisher
	logger    logger.ZapLogger
}

func NewStorefrontUseCase(
	sessions *session.Registry,
	recent *shopper.RecentViews,
	carts *shopper.Carts,
	views *shopper.Views,
	publisher events.Publisher,
	log logger.ZapLogger,
) storefront.UseCase {
	return &storefrontUseCase{
		sessions:  sessions,
		recent:    recent,
		carts:     carts,
		views:     views,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *storefrontUseCase) OpenSession(ctx context.Context, r catalog.Renderer) (string, error) {
	s, err := uc.sessions.Create()
	if err != nil {
		return "", err
	}
	metrics.Operations.WithLabelValues("open_session").Inc()

	if err := uc.view(ctx, s, r, func(*catalog.Controller) {}); err != nil {
		return "", err
	}
	uc.logger.Debug("opened browsing session", zap.String("session_id", s.ID))
	return s.ID, nil
}

func (uc *storefrontUseCase) Search(ctx context.Context, sessionID, query string, r catalog.Renderer) error {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return err
	}
	metrics.Operations.WithLabelValues("search").Inc()
	return uc.view(ctx, s, r, func(ctl *catalog.Controller) {
		ctl.Search(query)
	})
}

func (uc *storefrontUseCase) Sort(ctx context.Context, sessionID, key string, r catalog.Renderer) error {
	sortKey, err := catalog.ParseSortKey(key)
	if err != nil {
		return err
	}
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return err
	}
	metrics.Operations.WithLabelValues("sort").Inc()
	return uc.view(ctx, s, r, func(ctl *catalog.Controller) {
		ctl.Sort(sortKey)
	})
}

func (uc *storefrontUseCase) FilterByPriceRange(ctx context.Context, sessionID string, lo, hi decimal.Decimal, r catalog.Renderer) error {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return err
	}
	metrics.Operations.WithLabelValues("filter_price").Inc()
	return uc.view(ctx, s, r, func(ctl *catalog.Controller) {
		ctl.FilterByPriceRange(lo, hi)
	})
}

func (uc *storefrontUseCase) ChangePage(ctx context.Context, sessionID string, page int, r catalog.Renderer) (bool, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return false, err
	}
	metrics.Operations.WithLabelValues("change_page").Inc()

	var changed bool
	err = uc.view(ctx, s, r, func(ctl *catalog.Controller) {
		changed = ctl.ChangePage(page)
	})
	return changed, err
}

func (uc *storefrontUseCase) SetPageSize(ctx context.Context, sessionID string, size int, r catalog.Renderer) (bool, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return false, err
	}
	metrics.Operations.WithLabelValues("set_page_size").Inc()

	var changed bool
	err = uc.view(ctx, s, r, func(ctl *catalog.Controller) {
		changed = ctl.SetPageSize(size)
	})
	return changed, err
}

func (uc *storefrontUseCase) GetPage(ctx context.Context, sessionID string, r catalog.Renderer) error {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.Do(func(ctl *catalog.Controller) error {
		return ctl.Render(r)
	})
}

func (uc *storefrontUseCase) GetProduct(ctx context.Context, sessionID string, productID int64) (*dto.ProductDetail, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	p, err := uc.product(productID)
	if err != nil {
		return nil, err
	}
	metrics.Operations.WithLabelValues("get_product").Inc()

	if _, err := uc.recent.Track(ctx, s.ID, p.ID); err != nil {
		uc.logger.Warn("failed to record recent view", zap.String("session_id", s.ID), zap.Int64("product_id", p.ID), zap.Error(err))
	}
	uc.publish(ctx, events.New(events.TypeProductViewed, s.ID, events.ProductViewedPayload{ProductID: p.ID}))

	return &dto.ProductDetail{
		Product:         p,
		DiscountPercent: p.DiscountPercent(),
		Savings:         p.Savings(),
	}, nil
}

func (uc *storefrontUseCase) RecentlyViewed(ctx context.Context, sessionID string) ([]model.Product, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ids, err := uc.recent.List(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("load recently viewed: %w", err)
	}

	return uc.sessions.Catalog().Lookup(ids), nil
}

func (uc *storefrontUseCase) AddToCart(ctx context.Context, sessionID string, productID int64) (*dto.CartView, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	p, err := uc.product(productID)
	if err != nil {
		return nil, err
	}
	metrics.Operations.WithLabelValues("add_to_cart").Inc()

	cart, err := uc.carts.Add(ctx, s.ID, p)
	if err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	metrics.CartAdds.Inc()
	uc.publish(ctx, events.New(events.TypeCartItemAdded, s.ID, events.CartItemAddedPayload{
		ProductID: p.ID,
		Quantity:  1,
		UnitPrice: p.SalePrice.StringFixed(2),
	}))

	view := uc.cartView(cart)
	view.Added = &p
	return view, nil
}

func (uc *storefrontUseCase) GetCart(ctx context.Context, sessionID string) (*dto.CartView, error) {
	s, err := uc.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart, err := uc.carts.Get(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return uc.cartView(cart), nil
}

// session finds a live session, or rebuilds it from the last saved view
// when this instance has never seen it or already expired it.
func (uc *storefrontUseCase) session(ctx context.Context, sessionID string) (*session.Session, error) {
	if sessionID == "" {
		return nil, storefront.ErrMissingSession
	}
	if s, ok := uc.sessions.Get(sessionID); ok {
		return s, nil
	}

	snap, err := uc.views.Load(ctx, sessionID)
	if errors.Is(err, shopper.ErrNotFound) {
		return nil, storefront.ErrSessionNotFound
	}
	if err != nil {
		uc.logger.Warn("failed to load saved view", zap.String("session_id", sessionID), zap.Error(err))
		return nil, storefront.ErrSessionNotFound
	}

	s, err := uc.sessions.Restore(sessionID, &snap)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("restored browsing session", zap.String("session_id", sessionID))
	return s, nil
}

// view applies op, saves the new view and renders it. All of it happens
// under the session lock so saved views follow the order of operations.
func (uc *storefrontUseCase) view(ctx context.Context, s *session.Session, r catalog.Renderer, op func(ctl *catalog.Controller)) error {
	return s.Do(func(ctl *catalog.Controller) error {
		op(ctl)

		if err := uc.views.Save(ctx, s.ID, ctl.Snapshot()); err != nil {
			uc.logger.Warn("failed to save view", zap.String("session_id", s.ID), zap.Error(err))
		}

		page := ctl.VisiblePage()
		if page.IsEmpty() {
			metrics.EmptyResults.Inc()
		}
		return r.Render(page)
	})
}

func (uc *storefrontUseCase) product(productID int64) (model.Product, error) {
	p, ok := uc.sessions.Catalog().Get(productID)
	if !ok {
		return model.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}

func (uc *storefrontUseCase) cartView(cart *model.Cart) *dto.CartView {
	view := &dto.CartView{
		Lines: make([]dto.CartLine, 0, len(cart.Items)),
		Count: cart.Count(),
		Total: cart.Total(),
	}
	for _, item := range cart.Items {
		p, ok := uc.sessions.Catalog().Get(item.ProductID)
		if !ok {
			p = model.Product{ID: item.ProductID}
		}
		view.Lines = append(view.Lines, dto.CartLine{
			Product:   p,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return view
}

func (uc *storefrontUseCase) publish(ctx context.Context, event events.Event) {
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("failed to publish event",
			zap.String("event_type", event.EventType),
			zap.String("session_id", event.SessionID),
			zap.Error(err),
		)
	}
}
