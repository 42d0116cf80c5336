package catalogv1

type Product struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	ImageURL        string `json:"image_url"`
	Description     string `json:"description"`
	OriginalPrice   string `json:"original_price"`
	SalePrice       string `json:"sale_price"`
	DiscountPercent int64  `json:"discount_percent"`
	PurchaseLink    string `json:"purchase_link"`
}

type PageLink struct {
	Number  int32 `json:"number,omitempty"`
	Current bool  `json:"current,omitempty"`
	Gap     bool  `json:"gap,omitempty"`
}

type Pagination struct {
	CurrentPage int32      `json:"current_page"`
	TotalPages  int32      `json:"total_pages"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
	StartItem   int32      `json:"start_item"`
	EndItem     int32      `json:"end_item"`
	TotalItems  int32      `json:"total_items"`
	Links       []PageLink `json:"links,omitempty"`
}

// PageResponse carries the visible page. Message is the localized
// empty-state text when there is nothing to show, otherwise the
// "showing x-y of n" line. Changed is only set by ChangePage and SetPageSize.
type PageResponse struct {
	Items      []Product  `json:"items"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message"`
	Changed    bool       `json:"changed,omitempty"`
}

type OpenSessionRequest struct{}

type OpenSessionResponse struct {
	SessionID string        `json:"session_id"`
	Page      *PageResponse `json:"page"`
}

type GetPageRequest struct{}

type SearchRequest struct {
	Query string `json:"query"`
}

type SortRequest struct {
	Key string `json:"key"`
}

// FilterByPriceRequest takes decimal strings such as "4.99".
type FilterByPriceRequest struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

type ChangePageRequest struct {
	Page int32 `json:"page"`
}

type SetPageSizeRequest struct {
	PageSize int32 `json:"page_size"`
}

type GetProductRequest struct {
	ID int64 `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
	Savings string   `json:"savings"`
}

type RecentlyViewedRequest struct{}

type RecentlyViewedResponse struct {
	Products []Product `json:"products"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
}

type GetCartRequest struct{}

type CartLine struct {
	Product   *Product `json:"product"`
	Quantity  int32    `json:"quantity"`
	UnitPrice string   `json:"unit_price"`
	Subtotal  string   `json:"subtotal"`
}

type CartResponse struct {
	Items   []CartLine `json:"items"`
	Count   int32      `json:"count"`
	Total   string     `json:"total"`
	Message string     `json:"message,omitempty"`
}
