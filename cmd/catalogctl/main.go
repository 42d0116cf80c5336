// catalogctl browses the catalog service from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

var (
	addr      string
	sessionID string
	lang      string
	timeout   time.Duration
)

// dial is replaced in tests.
var dial = func(target string) (*grpc.ClientConn, error) {
	return grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Browse the pattern catalog over gRPC",
	Long: `catalogctl drives a browsing session on the catalog service.

Without --session every command opens a fresh session first and prints its
id, so the next command can continue where this one left off:

  catalogctl search bear
  catalogctl --session <id> sort price-low
  catalogctl --session <id> page 2`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", envOr("CATALOG_ADDR", "localhost:8083"), "catalog service gRPC address")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", os.Getenv("CATALOG_SESSION"), "session id to continue")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "preferred language for messages")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(
		openCmd, pageCmd, searchCmd, sortCmd, priceCmd, gotoCmd, pageSizeCmd,
		showCmd, recentCmd, cartCmd, addCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// withClient connects, makes sure there is a session and runs fn with a
// context that carries it.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, client pb.CatalogServiceClient) error) error {
	conn, err := dial(addr)
	if err != nil {
		return fmt.Errorf("connect %s: %w", addr, err)
	}
	defer conn.Close()
	client := pb.NewCatalogServiceClient(conn)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	sid := sessionID
	if sid == "" {
		opened, err := client.OpenSession(ctx, &pb.OpenSessionRequest{})
		if err != nil {
			return err
		}
		sid = opened.SessionID
		fmt.Fprintf(cmd.ErrOrStderr(), "session %s\n", sid)
	}

	ctx = metadata.AppendToOutgoingContext(ctx,
		auth.SessionIDHeader, sid,
		auth.LanguageHeader, lang,
	)
	return fn(ctx, client)
}
