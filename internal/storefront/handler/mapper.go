package handler

import (
	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/dto"
)

func mapProductToProto(p model.Product) pb.Product {
	return pb.Product{
		ID:              p.ID,
		Title:           p.Title,
		ImageURL:        p.ImageURL,
		Description:     p.Description,
		OriginalPrice:   p.OriginalPrice.StringFixed(2),
		SalePrice:       p.SalePrice.StringFixed(2),
		DiscountPercent: p.DiscountPercent(),
		PurchaseLink:    p.PurchaseLink,
	}
}

func mapProductsToProto(products []model.Product) []pb.Product {
	out := make([]pb.Product, len(products))
	for i, p := range products {
		out[i] = mapProductToProto(p)
	}
	return out
}

func mapPaginationToProto(info catalog.PaginationInfo) pb.Pagination {
	links := make([]pb.PageLink, len(info.Links))
	for i, l := range info.Links {
		links[i] = pb.PageLink{Number: int32(l.Number), Current: l.Current, Gap: l.Gap}
	}
	return pb.Pagination{
		CurrentPage: int32(info.CurrentPage),
		TotalPages:  int32(info.TotalPages),
		HasPrevious: info.HasPrevious,
		HasNext:     info.HasNext,
		StartItem:   int32(info.StartItem),
		EndItem:     int32(info.EndItem),
		TotalItems:  int32(info.TotalItems),
		Links:       links,
	}
}

// pagePresenter renders a catalog page into a PageResponse with a
// localized status line.
type pagePresenter struct {
	tr       *i18n.Translator
	lang     string
	emptyMsg string

	resp *pb.PageResponse
}

func (p *pagePresenter) Render(page catalog.Page) error {
	resp := &pb.PageResponse{
		Items:      mapProductsToProto(page.Items),
		Pagination: mapPaginationToProto(page.Pagination),
	}
	if page.IsEmpty() {
		resp.Message = p.tr.Localize(p.emptyMsg, nil, p.lang)
	} else {
		resp.Message = p.tr.Localize(i18n.MsgShowing, map[string]any{
			"Start": page.Pagination.StartItem,
			"End":   page.Pagination.EndItem,
			"Total": page.Pagination.TotalItems,
		}, p.lang)
	}
	p.resp = resp
	return nil
}

func mapCartToProto(view *dto.CartView) *pb.CartResponse {
	items := make([]pb.CartLine, len(view.Lines))
	for i, line := range view.Lines {
		p := mapProductToProto(line.Product)
		items[i] = pb.CartLine{
			Product:   &p,
			Quantity:  int32(line.Quantity),
			UnitPrice: line.UnitPrice.StringFixed(2),
			Subtotal:  line.Subtotal.StringFixed(2),
		}
	}
	return &pb.CartResponse{
		Items: items,
		Count: int32(view.Count),
		Total: view.Total.StringFixed(2),
	}
}
