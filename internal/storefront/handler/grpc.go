package handler

import (
	"context"
	"errors"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ pb.CatalogServiceServer = (*CatalogHandler)(nil)

type CatalogHandler struct {
	pb.UnimplementedCatalogServiceServer
	uc     storefront.UseCase
	tr     *i18n.Translator
	logger logger.ZapLogger
}

func NewCatalogHandler(uc storefront.UseCase, tr *i18n.Translator, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		tr:     tr,
		logger: log,
	}
}

func (h *CatalogHandler) OpenSession(ctx context.Context, req *pb.OpenSessionRequest) (*pb.OpenSessionResponse, error) {
	out := h.presenter(ctx, i18n.MsgCatalogEmpty)
	sessionID, err := h.uc.OpenSession(ctx, out)
	if err != nil {
		return nil, h.toStatus(ctx, "open session", err)
	}
	return &pb.OpenSessionResponse{
		SessionID: sessionID,
		Page:      out.resp,
	}, nil
}

func (h *CatalogHandler) GetPage(ctx context.Context, req *pb.GetPageRequest) (*pb.PageResponse, error) {
	out := h.presenter(ctx, i18n.MsgNoResults)
	if err := h.uc.GetPage(ctx, auth.GetSessionID(ctx), out); err != nil {
		return nil, h.toStatus(ctx, "get page", err)
	}
	return out.resp, nil
}

func (h *CatalogHandler) Search(ctx context.Context, req *pb.SearchRequest) (*pb.PageResponse, error) {
	out := h.presenter(ctx, i18n.MsgNoResults)
	if err := h.uc.Search(ctx, auth.GetSessionID(ctx), req.Query, out); err != nil {
		return nil, h.toStatus(ctx, "search", err)
	}
	return out.resp, nil
}

func (h *CatalogHandler) Sort(ctx context.Context, req *pb.SortRequest) (*pb.PageResponse, error) {
	out := h.presenter(ctx, i18n.MsgNoResults)
	if err := h.uc.Sort(ctx, auth.GetSessionID(ctx), req.Key, out); err != nil {
		return nil, h.toStatus(ctx, "sort", err)
	}
	return out.resp, nil
}

func (h *CatalogHandler) FilterByPriceRange(ctx context.Context, req *pb.FilterByPriceRequest) (*pb.PageResponse, error) {
	lo, err := decimal.NewFromString(req.Min)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid min price %q", req.Min)
	}
	hi, err := decimal.NewFromString(req.Max)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid max price %q", req.Max)
	}

	out := h.presenter(ctx, i18n.MsgNoResults)
	if err := h.uc.FilterByPriceRange(ctx, auth.GetSessionID(ctx), lo, hi, out); err != nil {
		return nil, h.toStatus(ctx, "filter by price", err)
	}
	return out.resp, nil
}

func (h *CatalogHandler) ChangePage(ctx context.Context, req *pb.ChangePageRequest) (*pb.PageResponse, error) {
	out := h.presenter(ctx, i18n.MsgNoResults)
	changed, err := h.uc.ChangePage(ctx, auth.GetSessionID(ctx), int(req.Page), out)
	if err != nil {
		return nil, h.toStatus(ctx, "change page", err)
	}
	out.resp.Changed = changed
	return out.resp, nil
}

func (h *CatalogHandler) SetPageSize(ctx context.Context, req *pb.SetPageSizeRequest) (*pb.PageResponse, error) {
	out := h.presenter(ctx, i18n.MsgNoResults)
	changed, err := h.uc.SetPageSize(ctx, auth.GetSessionID(ctx), int(req.PageSize), out)
	if err != nil {
		return nil, h.toStatus(ctx, "set page size", err)
	}
	out.resp.Changed = changed
	return out.resp, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *pb.GetProductRequest) (*pb.GetProductResponse, error) {
	detail, err := h.uc.GetProduct(ctx, auth.GetSessionID(ctx), req.ID)
	if err != nil {
		return nil, h.toStatus(ctx, "get product", err)
	}
	p := mapProductToProto(detail.Product)
	p.DiscountPercent = detail.DiscountPercent
	return &pb.GetProductResponse{
		Product: &p,
		Savings: detail.Savings.StringFixed(2),
	}, nil
}

func (h *CatalogHandler) RecentlyViewed(ctx context.Context, req *pb.RecentlyViewedRequest) (*pb.RecentlyViewedResponse, error) {
	products, err := h.uc.RecentlyViewed(ctx, auth.GetSessionID(ctx))
	if err != nil {
		return nil, h.toStatus(ctx, "recently viewed", err)
	}
	return &pb.RecentlyViewedResponse{
		Products: mapProductsToProto(products),
	}, nil
}

func (h *CatalogHandler) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.CartResponse, error) {
	view, err := h.uc.AddToCart(ctx, auth.GetSessionID(ctx), req.ProductID)
	if err != nil {
		return nil, h.toStatus(ctx, "add to cart", err)
	}
	resp := mapCartToProto(view)
	if view.Added != nil {
		resp.Message = h.tr.Localize(i18n.MsgCartItemAdded, map[string]any{
			"Title": view.Added.Title,
		}, auth.GetLanguage(ctx))
	}
	return resp, nil
}

func (h *CatalogHandler) GetCart(ctx context.Context, req *pb.GetCartRequest) (*pb.CartResponse, error) {
	view, err := h.uc.GetCart(ctx, auth.GetSessionID(ctx))
	if err != nil {
		return nil, h.toStatus(ctx, "get cart", err)
	}
	return mapCartToProto(view), nil
}

func (h *CatalogHandler) presenter(ctx context.Context, emptyMsg string) *pagePresenter {
	return &pagePresenter{tr: h.tr, lang: auth.GetLanguage(ctx), emptyMsg: emptyMsg}
}

// toStatus maps use case errors to gRPC status codes. Anything unexpected
// is logged and reported as Internal.
func (h *CatalogHandler) toStatus(ctx context.Context, op string, err error) error {
	lang := auth.GetLanguage(ctx)
	switch {
	case errors.Is(err, storefront.ErrMissingSession):
		return status.Error(codes.InvalidArgument, "missing session context")
	case errors.Is(err, storefront.ErrSessionNotFound):
		return status.Error(codes.NotFound, h.tr.Localize(i18n.MsgSessionNotFound, nil, lang))
	case errors.Is(err, catalog.ErrProductNotFound):
		return status.Error(codes.NotFound, h.tr.Localize(i18n.MsgProductNotFound, nil, lang))
	case errors.Is(err, catalog.ErrUnknownSortKey):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	h.logger.Error("failed to "+op, zap.String("session_id", auth.GetSessionID(ctx)), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}
