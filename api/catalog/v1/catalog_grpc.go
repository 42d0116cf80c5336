package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "catalog.v1.CatalogService"

const (
	CatalogService_OpenSession_FullMethodName        = "/" + ServiceName + "/OpenSession"
	CatalogService_GetPage_FullMethodName            = "/" + ServiceName + "/GetPage"
	CatalogService_Search_FullMethodName             = "/" + ServiceName + "/Search"
	CatalogService_Sort_FullMethodName               = "/" + ServiceName + "/Sort"
	CatalogService_FilterByPriceRange_FullMethodName = "/" + ServiceName + "/FilterByPriceRange"
	CatalogService_ChangePage_FullMethodName         = "/" + ServiceName + "/ChangePage"
	CatalogService_SetPageSize_FullMethodName        = "/" + ServiceName + "/SetPageSize"
	CatalogService_GetProduct_FullMethodName         = "/" + ServiceName + "/GetProduct"
	CatalogService_RecentlyViewed_FullMethodName     = "/" + ServiceName + "/RecentlyViewed"
	CatalogService_AddToCart_FullMethodName          = "/" + ServiceName + "/AddToCart"
	CatalogService_GetCart_FullMethodName            = "/" + ServiceName + "/GetCart"
)

// CatalogServiceServer is implemented by the storefront handler. Every
// method but OpenSession expects the x-session-id metadata header.
type CatalogServiceServer interface {
	OpenSession(context.Context, *OpenSessionRequest) (*OpenSessionResponse, error)
	GetPage(context.Context, *GetPageRequest) (*PageResponse, error)
	Search(context.Context, *SearchRequest) (*PageResponse, error)
	Sort(context.Context, *SortRequest) (*PageResponse, error)
	FilterByPriceRange(context.Context, *FilterByPriceRequest) (*PageResponse, error)
	ChangePage(context.Context, *ChangePageRequest) (*PageResponse, error)
	SetPageSize(context.Context, *SetPageSizeRequest) (*PageResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	RecentlyViewed(context.Context, *RecentlyViewedRequest) (*RecentlyViewedResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*CartResponse, error)
	GetCart(context.Context, *GetCartRequest) (*CartResponse, error)
}

// UnimplementedCatalogServiceServer answers codes.Unimplemented for every
// method. Embed it to stay forward compatible.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) OpenSession(context.Context, *OpenSessionRequest) (*OpenSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenSession not implemented")
}
func (UnimplementedCatalogServiceServer) GetPage(context.Context, *GetPageRequest) (*PageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPage not implemented")
}
func (UnimplementedCatalogServiceServer) Search(context.Context, *SearchRequest) (*PageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Search not implemented")
}
func (UnimplementedCatalogServiceServer) Sort(context.Context, *SortRequest) (*PageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Sort not implemented")
}
func (UnimplementedCatalogServiceServer) FilterByPriceRange(context.Context, *FilterByPriceRequest) (*PageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FilterByPriceRange not implemented")
}
func (UnimplementedCatalogServiceServer) ChangePage(context.Context, *ChangePageRequest) (*PageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangePage not implemented")
}
func (UnimplementedCatalogServiceServer) SetPageSize(context.Context, *SetPageSizeRequest) (*PageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetPageSize not implemented")
}
func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedCatalogServiceServer) RecentlyViewed(context.Context, *RecentlyViewedRequest) (*RecentlyViewedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecentlyViewed not implemented")
}
func (UnimplementedCatalogServiceServer) AddToCart(context.Context, *AddToCartRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToCart not implemented")
}
func (UnimplementedCatalogServiceServer) GetCart(context.Context, *GetCartRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// unary adapts a typed server method to grpc.MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(CatalogServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "OpenSession", Handler: unary(CatalogService_OpenSession_FullMethodName, CatalogServiceServer.OpenSession)},
		{MethodName: "GetPage", Handler: unary(CatalogService_GetPage_FullMethodName, CatalogServiceServer.GetPage)},
		{MethodName: "Search", Handler: unary(CatalogService_Search_FullMethodName, CatalogServiceServer.Search)},
		{MethodName: "Sort", Handler: unary(CatalogService_Sort_FullMethodName, CatalogServiceServer.Sort)},
		{MethodName: "FilterByPriceRange", Handler: unary(CatalogService_FilterByPriceRange_FullMethodName, CatalogServiceServer.FilterByPriceRange)},
		{MethodName: "ChangePage", Handler: unary(CatalogService_ChangePage_FullMethodName, CatalogServiceServer.ChangePage)},
		{MethodName: "SetPageSize", Handler: unary(CatalogService_SetPageSize_FullMethodName, CatalogServiceServer.SetPageSize)},
		{MethodName: "GetProduct", Handler: unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct)},
		{MethodName: "RecentlyViewed", Handler: unary(CatalogService_RecentlyViewed_FullMethodName, CatalogServiceServer.RecentlyViewed)},
		{MethodName: "AddToCart", Handler: unary(CatalogService_AddToCart_FullMethodName, CatalogServiceServer.AddToCart)},
		{MethodName: "GetCart", Handler: unary(CatalogService_GetCart_FullMethodName, CatalogServiceServer.GetCart)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

type CatalogServiceClient interface {
	OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*OpenSessionResponse, error)
	GetPage(ctx context.Context, in *GetPageRequest, opts ...grpc.CallOption) (*PageResponse, error)
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*PageResponse, error)
	Sort(ctx context.Context, in *SortRequest, opts ...grpc.CallOption) (*PageResponse, error)
	FilterByPriceRange(ctx context.Context, in *FilterByPriceRequest, opts ...grpc.CallOption) (*PageResponse, error)
	ChangePage(ctx context.Context, in *ChangePageRequest, opts ...grpc.CallOption) (*PageResponse, error)
	SetPageSize(ctx context.Context, in *SetPageSizeRequest, opts ...grpc.CallOption) (*PageResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	RecentlyViewed(ctx context.Context, in *RecentlyViewedRequest, opts ...grpc.CallOption) (*RecentlyViewedResponse, error)
	AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*CartResponse, error)
	GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*CartResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) OpenSession(ctx context.Context, in *OpenSessionRequest, opts ...grpc.CallOption) (*OpenSessionResponse, error) {
	return invoke[OpenSessionResponse](ctx, c.cc, CatalogService_OpenSession_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetPage(ctx context.Context, in *GetPageRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, CatalogService_GetPage_FullMethodName, in, opts)
}

func (c *catalogServiceClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, CatalogService_Search_FullMethodName, in, opts)
}

func (c *catalogServiceClient) Sort(ctx context.Context, in *SortRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, CatalogService_Sort_FullMethodName, in, opts)
}

func (c *catalogServiceClient) FilterByPriceRange(ctx context.Context, in *FilterByPriceRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, CatalogService_FilterByPriceRange_FullMethodName, in, opts)
}

func (c *catalogServiceClient) ChangePage(ctx context.Context, in *ChangePageRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, CatalogService_ChangePage_FullMethodName, in, opts)
}

func (c *catalogServiceClient) SetPageSize(ctx context.Context, in *SetPageSizeRequest, opts ...grpc.CallOption) (*PageResponse, error) {
	return invoke[PageResponse](ctx, c.cc, CatalogService_SetPageSize_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return invoke[GetProductResponse](ctx, c.cc, CatalogService_GetProduct_FullMethodName, in, opts)
}

func (c *catalogServiceClient) RecentlyViewed(ctx context.Context, in *RecentlyViewedRequest, opts ...grpc.CallOption) (*RecentlyViewedResponse, error) {
	return invoke[RecentlyViewedResponse](ctx, c.cc, CatalogService_RecentlyViewed_FullMethodName, in, opts)
}

func (c *catalogServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CatalogService_AddToCart_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CatalogService_GetCart_FullMethodName, in, opts)
}
