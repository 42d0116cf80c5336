package handler

import (
	"context"
	"net/http"
	"strconv"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// HTTPHandler exposes the catalog service as JSON over HTTP. It shares the
// gRPC handler so both transports answer identically.
type HTTPHandler struct {
	svc    pb.CatalogServiceServer
	logger logger.ZapLogger
}

func NewHTTPHandler(svc pb.CatalogServiceServer, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: log}
}

// Router builds the gin engine: the API under /api/v1 plus /metrics and
// /healthz.
func (h *HTTPHandler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.ShopperContext(h.logger))
	{
		api.POST("/sessions", h.openSession)

		api.GET("/catalog", h.getPage)
		api.POST("/catalog/search", h.search)
		api.POST("/catalog/sort", h.sort)
		api.POST("/catalog/price-filter", h.filterByPrice)
		api.POST("/catalog/page", h.changePage)
		api.POST("/catalog/page-size", h.setPageSize)

		api.GET("/products/:id", h.getProduct)
		api.GET("/recently-viewed", h.recentlyViewed)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addToCart)
	}
	return r
}

func (h *HTTPHandler) openSession(c *gin.Context) {
	resp, err := h.svc.OpenSession(c.Request.Context(), &pb.OpenSessionRequest{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("X-Session-ID", resp.SessionID)
	c.JSON(http.StatusCreated, resp)
}

func (h *HTTPHandler) getPage(c *gin.Context) {
	respond(c, h.svc.GetPage, &pb.GetPageRequest{})
}

func (h *HTTPHandler) search(c *gin.Context) {
	var req pb.SearchRequest
	if !bind(c, &req) {
		return
	}
	respond(c, h.svc.Search, &req)
}

func (h *HTTPHandler) sort(c *gin.Context) {
	var req pb.SortRequest
	if !bind(c, &req) {
		return
	}
	respond(c, h.svc.Sort, &req)
}

func (h *HTTPHandler) filterByPrice(c *gin.Context) {
	var req pb.FilterByPriceRequest
	if !bind(c, &req) {
		return
	}
	respond(c, h.svc.FilterByPriceRange, &req)
}

func (h *HTTPHandler) changePage(c *gin.Context) {
	var req pb.ChangePageRequest
	if !bind(c, &req) {
		return
	}
	respond(c, h.svc.ChangePage, &req)
}

func (h *HTTPHandler) setPageSize(c *gin.Context) {
	var req pb.SetPageSizeRequest
	if !bind(c, &req) {
		return
	}
	respond(c, h.svc.SetPageSize, &req)
}

func (h *HTTPHandler) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	respond(c, h.svc.GetProduct, &pb.GetProductRequest{ID: id})
}

func (h *HTTPHandler) recentlyViewed(c *gin.Context) {
	respond(c, h.svc.RecentlyViewed, &pb.RecentlyViewedRequest{})
}

func (h *HTTPHandler) getCart(c *gin.Context) {
	respond(c, h.svc.GetCart, &pb.GetCartRequest{})
}

func (h *HTTPHandler) addToCart(c *gin.Context) {
	var req pb.AddToCartRequest
	if !bind(c, &req) {
		return
	}
	respond(c, h.svc.AddToCart, &req)
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func respond[Req, Resp any](c *gin.Context, call func(context.Context, *Req) (*Resp, error), req *Req) {
	resp, err := call(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

var httpStatus = map[codes.Code]int{
	codes.InvalidArgument: http.StatusBadRequest,
	codes.NotFound:        http.StatusNotFound,
	codes.Unauthenticated: http.StatusUnauthorized,
	codes.Unimplemented:   http.StatusNotImplemented,
}

func writeError(c *gin.Context, err error) {
	st := status.Convert(err)
	code, ok := httpStatus[st.Code()]
	if !ok {
		code = http.StatusInternalServerError
	}
	c.JSON(code, gin.H{
		"error":      st.Message(),
		"session_id": auth.GetSessionID(c.Request.Context()),
	})
}
