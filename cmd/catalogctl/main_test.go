package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

type fakeCatalog struct {
	pb.UnimplementedCatalogServiceServer
	sessions []string
}

func (f *fakeCatalog) OpenSession(context.Context, *pb.OpenSessionRequest) (*pb.OpenSessionResponse, error) {
	return &pb.OpenSessionResponse{SessionID: "fresh", Page: &pb.PageResponse{Message: "Showing 0-0 of 0 products"}}, nil
}

func (f *fakeCatalog) Search(ctx context.Context, req *pb.SearchRequest) (*pb.PageResponse, error) {
	f.sessions = append(f.sessions, auth.GetSessionID(ctx))
	return &pb.PageResponse{
		Items: []pb.Product{{ID: 7, Title: "Brown Bear Pattern", SalePrice: "4.99", OriginalPrice: "14.99", DiscountPercent: 67}},
		Pagination: pb.Pagination{
			CurrentPage: 1,
			TotalPages:  3,
		},
		Message: "query=" + req.Query,
	}, nil
}

func (f *fakeCatalog) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.CartResponse, error) {
	f.sessions = append(f.sessions, auth.GetSessionID(ctx))
	p := &pb.Product{ID: req.ProductID, Title: "Brown Bear Pattern"}
	return &pb.CartResponse{
		Items:   []pb.CartLine{{Product: p, Quantity: 2, Subtotal: "9.98"}},
		Count:   2,
		Total:   "9.98",
		Message: "Brown Bear Pattern added to cart!",
	}, nil
}

func runCLI(t *testing.T, fake *fakeCatalog, args ...string) (string, string, error) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterCatalogServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	dial = func(string) (*grpc.ClientConn, error) {
		return grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
	}
	sessionID = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSearchOpensSessionWhenNoneGiven(t *testing.T) {
	fake := &fakeCatalog{}
	out, errOut, err := runCLI(t, fake, "search", "brown", "bear")
	require.NoError(t, err)

	assert.Contains(t, errOut, "session fresh")
	assert.Contains(t, out, "Brown Bear Pattern")
	assert.Contains(t, out, "query=brown bear")
	assert.Contains(t, out, "page 1 of 3")
	assert.Equal(t, []string{"fresh"}, fake.sessions)
}

func TestAddUsesGivenSession(t *testing.T) {
	fake := &fakeCatalog{}
	out, errOut, err := runCLI(t, fake, "--session", "abc", "add", "7")
	require.NoError(t, err)

	assert.Empty(t, errOut)
	assert.Contains(t, out, "added to cart!")
	assert.Contains(t, out, "2 items, total $9.98")
	assert.Equal(t, []string{"abc"}, fake.sessions)
}

func TestAddRejectsBadID(t *testing.T) {
	_, _, err := runCLI(t, &fakeCatalog{}, "add", "seven")
	assert.Error(t, err)
}
