package http

import (
	"time"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/usecase"
)

// JSON-представления ответов API. Суммы всегда в кобо.

type cartLineView struct {
	ID           string  `json:"id"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductSlug  string  `json:"productSlug"`
	ProductImage *string `json:"productImage,omitempty"`
	VariantID    *int64  `json:"variantId,omitempty"`
	VariantSize  *string `json:"variantSize,omitempty"`
	VariantColor *string `json:"variantColor,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    int64   `json:"unitPrice"`
	LineTotal    int64   `json:"lineTotal"`
}

type cartTotalsView struct {
	ItemCount     int   `json:"itemCount"`
	TotalQuantity int   `json:"totalQuantity"`
	Subtotal      int64 `json:"subtotal"`
	Shipping      int64 `json:"shipping"`
	Tax           int64 `json:"tax"`
	Total         int64 `json:"total"`
}

type cartView struct {
	Items  []cartLineView `json:"items"`
	Totals cartTotalsView `json:"totals"`
}

type addResultView struct {
	LineID    string `json:"lineId"`
	Requested int    `json:"requested"`
	Added     int    `json:"added"`
	Remaining int    `json:"remaining"`
	Limited   bool   `json:"limited"`
}

func newCartView(cart *domain.Cart) cartView {
	view := cartView{
		Items: make([]cartLineView, 0, len(cart.Items)),
		Totals: cartTotalsView{
			ItemCount:     cart.Totals.ItemCount,
			TotalQuantity: cart.Totals.TotalQuantity,
			Subtotal:      cart.Totals.Subtotal,
			Shipping:      cart.Totals.Shipping,
			Tax:           cart.Totals.Tax,
			Total:         cart.Totals.Total,
		},
	}

	for i := range cart.Items {
		line := &cart.Items[i]

		lineView := cartLineView{
			ID:           line.ID,
			ProductID:    line.Product.ID,
			ProductName:  line.Product.Name,
			ProductSlug:  line.Product.Slug,
			ProductImage: line.Product.Image,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice(),
			LineTotal:    line.Total(),
		}
		if line.Variant != nil {
			variantID := line.Variant.ID
			lineView.VariantID = &variantID
			lineView.VariantSize = line.Variant.Size
			lineView.VariantColor = line.Variant.Color
		}

		view.Items = append(view.Items, lineView)
	}

	return view
}

func newAddResultView(result domain.AddResult) addResultView {
	return addResultView{
		LineID:    result.LineID,
		Requested: result.Requested,
		Added:     result.Added,
		Remaining: result.Remaining,
		Limited:   result.Limited,
	}
}

type productVariantView struct {
	ID              int64   `json:"id"`
	Size            *string `json:"size,omitempty"`
	Color           *string `json:"color,omitempty"`
	PriceAdjustment int64   `json:"priceAdjustment"`
	Inventory       int     `json:"inventory"`
}

type productImageView struct {
	Key      string `json:"key"`
	Position int    `json:"position"`
}

type productView struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Slug       string               `json:"slug"`
	Price      int64                `json:"price"`
	Inventory  int                  `json:"inventory"`
	CategoryID int64                `json:"categoryId"`
	IsArchived bool                 `json:"isArchived"`
	Images     []productImageView   `json:"images"`
	Variants   []productVariantView `json:"variants"`
}

func newProductView(p *domain.Product) productView {
	view := productView{
		ID:         p.ID,
		Name:       p.Name,
		Slug:       p.Slug,
		Price:      p.Price,
		Inventory:  p.Inventory,
		CategoryID: p.CategoryID,
		IsArchived: p.IsArchived,
		Images:     make([]productImageView, 0, len(p.Images)),
		Variants:   make([]productVariantView, 0, len(p.Variants)),
	}
	for _, image := range p.Images {
		view.Images = append(view.Images, productImageView{Key: image.ObjectKey, Position: image.Position})
	}
	for _, variant := range p.Variants {
		view.Variants = append(view.Variants, productVariantView{
			ID:              variant.ID,
			Size:            variant.Size,
			Color:           variant.Color,
			PriceAdjustment: variant.PriceAdjustment,
			Inventory:       variant.Inventory,
		})
	}

	return view
}

func newProductViews(products []domain.Product) []productView {
	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, newProductView(&products[i]))
	}
	return views
}

type categoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newCategoryViews(categories []domain.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, categoryView{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return views
}

type locationView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Phone    string `json:"phone"`
	Hours    string `json:"hours"`
	IsActive bool   `json:"isActive"`
}

func newLocationView(l *domain.StoreLocation) locationView {
	return locationView{
		ID:       l.ID,
		Name:     l.Name,
		Address:  l.Address,
		City:     l.City,
		State:    l.State,
		Phone:    l.Phone,
		Hours:    l.Hours,
		IsActive: l.IsActive,
	}
}

func newLocationViews(locations []domain.StoreLocation) []locationView {
	views := make([]locationView, 0, len(locations))
	for i := range locations {
		views = append(views, newLocationView(&locations[i]))
	}
	return views
}

type orderItemView struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	VariantID *int64  `json:"variantId,omitempty"`
	Name      string  `json:"name"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
	UnitPrice int64   `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type orderView struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	Status    string          `json:"status"`
	Subtotal  int64           `json:"subtotal"`
	Shipping  int64           `json:"shipping"`
	Tax       int64           `json:"tax"`
	Total     int64           `json:"total"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	State     string          `json:"state"`
	CreatedAt string          `json:"createdAt"`
	Items     []orderItemView `json:"items,omitempty"`
}

func newOrderView(o *domain.Order) orderView {
	view := orderView{
		ID:        o.ID,
		Reference: o.Reference,
		Status:    string(o.Status),
		Subtotal:  o.Subtotal,
		Shipping:  o.Shipping,
		Tax:       o.Tax,
		Total:     o.Total,
		FirstName: o.Shipment.FirstName,
		LastName:  o.Shipment.LastName,
		Email:     o.Shipment.Email,
		Phone:     o.Shipment.Phone,
		Address:   o.Shipment.Address,
		City:      o.Shipment.City,
		State:     o.Shipment.State,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, item := range o.Items {
		view.Items = append(view.Items, orderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Name:      item.Name,
			Size:      item.Size,
			Color:     item.Color,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return view
}

func newOrderViews(orders []domain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i]))
	}
	return views
}

type customerView struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func newCustomerViews(customers []domain.Customer) []customerView {
	views := make([]customerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, customerView{
			ID:        c.ID,
			Email:     c.Email,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Phone:     c.Phone,
		})
	}
	return views
}

type shippingQuoteView struct {
	Cost          int64  `json:"cost"`
	ZoneName      string `json:"zoneName,omitempty"`
	EstimatedDays string `json:"estimatedDays,omitempty"`
	IsFree        bool   `json:"isFree"`
	Fallback      bool   `json:"fallback"`
}

func newShippingQuoteView(quote *usecase.ShippingQuoteRes) shippingQuoteView {
	return shippingQuoteView{
		Cost:          quote.Cost,
		ZoneName:      quote.ZoneName,
		EstimatedDays: quote.EstimatedDays,
		IsFree:        quote.IsFree,
		Fallback:      quote.Fallback,
	}
}
