package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a new session and show its first page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := dial(addr)
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		resp, err := pb.NewCatalogServiceClient(conn).OpenSession(ctx, &pb.OpenSessionRequest{})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "session %s\n", resp.SessionID)
		printPage(cmd.OutOrStdout(), resp.Page)
		return nil
	},
}

var pageCmd = &cobra.Command{
	Use:   "show-page",
	Short: "Show the session's current page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.GetPage(ctx, &pb.GetPageRequest{})
			if err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search titles and descriptions; no query shows everything",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.Search(ctx, &pb.SearchRequest{Query: query})
			if err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var sortCmd = &cobra.Command{
	Use:       "sort <price-low|price-high|discount|name|default>",
	Short:     "Reorder the current results",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"price-low", "price-high", "discount", "name", "default"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.Sort(ctx, &pb.SortRequest{Key: args[0]})
			if err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var priceCmd = &cobra.Command{
	Use:   "price <min> <max>",
	Short: "Show patterns whose sale price is within [min, max]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.FilterByPriceRange(ctx, &pb.FilterByPriceRequest{Min: args[0], Max: args[1]})
			if err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var gotoCmd = &cobra.Command{
	Use:   "page <n>",
	Short: "Go to page n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page must be a number: %w", err)
		}
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.ChangePage(ctx, &pb.ChangePageRequest{Page: int32(n)})
			if err != nil {
				return err
			}
			if !resp.Changed {
				fmt.Fprintf(cmd.ErrOrStderr(), "page %d does not exist\n", n)
			}
			printPage(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var pageSizeCmd = &cobra.Command{
	Use:   "page-size <n>",
	Short: "Change how many patterns a page holds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("page size must be a number: %w", err)
		}
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.SetPageSize(ctx, &pb.SetPageSizeRequest{PageSize: int32(n)})
			if err != nil {
				return err
			}
			printPage(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %w", err)
		}
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.GetProduct(ctx, &pb.GetProductRequest{ID: id})
			if err != nil {
				return err
			}
			p := resp.Product
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (#%d)\n", p.Title, p.ID)
			fmt.Fprintf(out, "$%s  was $%s  %d%% off, save $%s\n", p.SalePrice, p.OriginalPrice, p.DiscountPercent, resp.Savings)
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			if p.PurchaseLink != "" {
				fmt.Fprintln(out, p.PurchaseLink)
			}
			return nil
		})
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently viewed patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.RecentlyViewed(ctx, &pb.RecentlyViewedRequest{})
			if err != nil {
				return err
			}
			printProducts(cmd.OutOrStdout(), resp.Products)
			return nil
		})
	},
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.GetCart(ctx, &pb.GetCartRequest{})
			if err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a pattern to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %w", err)
		}
		return withClient(cmd, func(ctx context.Context, client pb.CatalogServiceClient) error {
			resp, err := client.AddToCart(ctx, &pb.AddToCartRequest{ProductID: id})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			printCart(cmd.OutOrStdout(), resp)
			return nil
		})
	},
}

func printProducts(w io.Writer, products []pb.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t$%s\t$%s\t%d%%\n", p.ID, p.Title, p.SalePrice, p.OriginalPrice, p.DiscountPercent)
	}
	tw.Flush()
}

func printPage(w io.Writer, page *pb.PageResponse) {
	if page == nil {
		return
	}
	printProducts(w, page.Items)
	fmt.Fprintln(w, page.Message)
	if page.Pagination.TotalPages > 1 {
		fmt.Fprintf(w, "page %d of %d\n", page.Pagination.CurrentPage, page.Pagination.TotalPages)
	}
}

func printCart(w io.Writer, cart *pb.CartResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, line := range cart.Items {
		fmt.Fprintf(tw, "%d\t%s\tx%d\t$%s\n", line.Product.ID, line.Product.Title, line.Quantity, line.Subtotal)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d items, total $%s\n", cart.Count, cart.Total)
}
