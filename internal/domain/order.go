package domain

import "time"

// OrderStatus — статус жизненного цикла заказа.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus проверяет, что строка является известным статусом заказа.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ShippingInfo — адрес и контакты получателя, зафиксированные в заказе.
type ShippingInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
}

// Order описывает оформленный заказ. Суммы хранятся в кобо;
// Shipping — авторитетный тариф зоны, рассчитанный при оформлении.
type Order struct {
	ID         int64
	Reference  string // референс транзакции платёжного шлюза
	CustomerID int64
	Status     OrderStatus
	Subtotal   int64
	Shipping   int64
	Tax        int64
	Total      int64
	Shipment   ShippingInfo
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// OrderItem — строка заказа: снимок товара на момент покупки.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	VariantID *int64
	Name      string
	Size      *string
	Color     *string
	UnitPrice int64 // в кобо, с учётом надбавки варианта
	Quantity  int
}

func NewOrder(reference string, customerID int64, subtotal, shipping, tax int64, shipment ShippingInfo, items []OrderItem) *Order {
	return &Order{
		Reference:  reference,
		CustomerID: customerID,
		Status:     OrderStatusPending,
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		Total:      subtotal + shipping + tax,
		Shipment:   shipment,
		Items:      items,
	}
}
