package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	Slug       string     `db:"slug"`
	Price      int64      `db:"price"`
	Inventory  int        `db:"inventory"`
	CategoryID int64      `db:"category_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// VariantModel представляет запись таблицы product_variants в PostgreSQL.
type VariantModel struct {
	ID              int64   `db:"id"`
	ProductID       int64   `db:"product_id"`
	Size            *string `db:"size"`
	Color           *string `db:"color"`
	PriceAdjustment int64   `db:"price_adjustment"`
	Inventory       int     `db:"inventory"`
}

// ProductImageModel представляет запись таблицы product_images в PostgreSQL.
type ProductImageModel struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	ObjectKey string `db:"object_key"`
	Position  int    `db:"position"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	Slug       string     `db:"slug"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID         int64      `db:"id"`
	Reference  string     `db:"reference"`
	CustomerID int64      `db:"customer_id"`
	Status     string     `db:"status"`
	Subtotal   int64      `db:"subtotal"`
	Shipping   int64      `db:"shipping"`
	Tax        int64      `db:"tax"`
	Total      int64      `db:"total"`
	FirstName  string     `db:"first_name"`
	LastName   string     `db:"last_name"`
	Email      string     `db:"email"`
	Phone      string     `db:"phone"`
	Address    string     `db:"address"`
	City       string     `db:"city"`
	State      string     `db:"state"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID        int64   `db:"id"`
	OrderID   int64   `db:"order_id"`
	ProductID int64   `db:"product_id"`
	VariantID *int64  `db:"variant_id"`
	Name      string  `db:"name"`
	Size      *string `db:"size"`
	Color     *string `db:"color"`
	UnitPrice int64   `db:"unit_price"`
	Quantity  int     `db:"quantity"`
}

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID        int64      `db:"id"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Phone     string     `db:"phone"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// StoreLocationModel представляет запись таблицы store_locations в PostgreSQL.
type StoreLocationModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Address   string     `db:"address"`
	City      string     `db:"city"`
	State     string     `db:"state"`
	Phone     string     `db:"phone"`
	Hours     string     `db:"hours"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	IsActive  bool       `db:"is_active"`
}

// ShippingZoneModel представляет запись таблицы shipping_zones в PostgreSQL.
type ShippingZoneModel struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	State         string `db:"state"`
	Cost          int64  `db:"cost"`
	EstimatedDays string `db:"estimated_days"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
