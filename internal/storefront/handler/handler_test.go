package handler

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/events"
	"github.com/fekuna/omnipos-catalog-service/internal/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/shopper"
	"github.com/fekuna/omnipos-catalog-service/internal/shopper/store"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/session"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newCatalogHandler(t *testing.T) *CatalogHandler {
	t.Helper()
	products := []model.Product{
		{ID: 7, Title: "Brown Bear Pattern", OriginalPrice: decimal.RequireFromString("14.99"), SalePrice: decimal.RequireFromString("4.99")},
		{ID: 8, Title: "Baby Giraffe Pattern", OriginalPrice: decimal.RequireFromString("14.99"), SalePrice: decimal.RequireFromString("4.99")},
		{ID: 9, Title: "Cute Bear Keychain", OriginalPrice: decimal.RequireFromString("10.99"), SalePrice: decimal.RequireFromString("3.99")},
	}
	c, err := catalog.New(products)
	require.NoError(t, err)
	reg, err := session.NewRegistry(c, 2, time.Hour, logger.NewNop())
	require.NoError(t, err)
	st := store.NewMemoryStore()
	uc := usecase.NewStorefrontUseCase(
		reg,
		shopper.NewRecentViews(st, time.Hour),
		shopper.NewCarts(st, time.Hour),
		shopper.NewViews(st, time.Hour),
		events.NopPublisher{},
		logger.NewNop(),
	)
	tr, err := i18n.New()
	require.NoError(t, err)
	return NewCatalogHandler(uc, tr, logger.NewNop())
}

func dialBufconn(t *testing.T, h *CatalogHandler) pb.CatalogServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.ContextInterceptor(logger.NewNop())))
	pb.RegisterCatalogServiceServer(srv, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewCatalogServiceClient(conn)
}

func withSession(sessionID, lang string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		auth.SessionIDHeader, sessionID,
		auth.LanguageHeader, lang,
	)
}

func TestGRPCBrowsing(t *testing.T) {
	client := dialBufconn(t, newCatalogHandler(t))

	opened, err := client.OpenSession(context.Background(), &pb.OpenSessionRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, opened.SessionID)
	assert.Len(t, opened.Page.Items, 2)
	assert.Equal(t, int32(2), opened.Page.Pagination.TotalPages)
	assert.Equal(t, "Showing 1-2 of 3 products", opened.Page.Message)

	ctx := withSession(opened.SessionID, "en")

	page, err := client.Search(ctx, &pb.SearchRequest{Query: "bear"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, int64(7), page.Items[0].ID)

	page, err = client.Sort(ctx, &pb.SortRequest{Key: "price-low"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), page.Items[0].ID)
	assert.Equal(t, "3.99", page.Items[0].SalePrice)
	assert.Equal(t, int64(64), page.Items[0].DiscountPercent)

	page, err = client.ChangePage(ctx, &pb.ChangePageRequest{Page: 2})
	require.NoError(t, err)
	assert.False(t, page.Changed)

	page, err = client.Search(ctx, &pb.SearchRequest{Query: "zebra"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, "No products match your search criteria.", page.Message)

	page, err = client.FilterByPriceRange(withSession(opened.SessionID, "id"), &pb.FilterByPriceRequest{Min: "4.99", Max: "4.99"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int32(2), page.Pagination.TotalItems)
	assert.Equal(t, "Menampilkan 1-2 dari 2 produk", page.Message)

	page, err = client.SetPageSize(ctx, &pb.SetPageSizeRequest{PageSize: 1})
	require.NoError(t, err)
	assert.True(t, page.Changed)
	assert.Equal(t, int32(2), page.Pagination.TotalPages)

	got, err := client.GetPage(ctx, &pb.GetPageRequest{})
	require.NoError(t, err)
	assert.Equal(t, page.Pagination, got.Pagination)
}

func TestGRPCProductAndCart(t *testing.T) {
	client := dialBufconn(t, newCatalogHandler(t))
	opened, err := client.OpenSession(context.Background(), &pb.OpenSessionRequest{})
	require.NoError(t, err)
	ctx := withSession(opened.SessionID, "en")

	detail, err := client.GetProduct(ctx, &pb.GetProductRequest{ID: 9})
	require.NoError(t, err)
	assert.Equal(t, "Cute Bear Keychain", detail.Product.Title)
	assert.Equal(t, "7.00", detail.Savings)

	recent, err := client.RecentlyViewed(ctx, &pb.RecentlyViewedRequest{})
	require.NoError(t, err)
	require.Len(t, recent.Products, 1)
	assert.Equal(t, int64(9), recent.Products[0].ID)

	cart, err := client.AddToCart(ctx, &pb.AddToCartRequest{ProductID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Brown Bear Pattern added to cart!", cart.Message)
	assert.Equal(t, int32(1), cart.Count)
	assert.Equal(t, "4.99", cart.Total)

	cart, err = client.GetCart(ctx, &pb.GetCartRequest{})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Empty(t, cart.Message)
}

func TestGRPCErrors(t *testing.T) {
	client := dialBufconn(t, newCatalogHandler(t))
	opened, err := client.OpenSession(context.Background(), &pb.OpenSessionRequest{})
	require.NoError(t, err)
	ctx := withSession(opened.SessionID, "en")

	_, err = client.GetPage(context.Background(), &pb.GetPageRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetPage(withSession("ghost", "en"), &pb.GetPageRequest{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Sort(ctx, &pb.SortRequest{Key: "popularity"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.FilterByPriceRange(ctx, &pb.FilterByPriceRequest{Min: "cheap", Max: "5"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetProduct(ctx, &pb.GetProductRequest{ID: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "This pattern is no longer available.", status.Convert(err).Message())
}

func TestHTTPRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewHTTPHandler(newCatalogHandler(t), logger.NewNop()).Router()

	do := func(method, path, sessionID, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if sessionID != "" {
			req.Header.Set("X-Session-ID", sessionID)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodPost, "/api/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var opened pb.OpenSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	sid := opened.SessionID
	assert.Equal(t, sid, w.Header().Get("X-Session-ID"))

	w = do(http.MethodPost, "/api/v1/catalog/search", sid, `{"query":"giraffe"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var page pb.PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(8), page.Items[0].ID)

	w = do(http.MethodPost, "/api/v1/catalog/sort", sid, `{"key":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(http.MethodGet, "/api/v1/products/abc", sid, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(http.MethodGet, "/api/v1/products/404", sid, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(http.MethodPost, "/api/v1/cart/items", sid, `{"product_id":8}`)
	require.Equal(t, http.StatusOK, w.Code)
	var cart pb.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, int32(1), cart.Count)

	w = do(http.MethodGet, "/api/v1/catalog", "nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "catalog_operations_total")
}
