package domain

// ShippingZone — тариф доставки для региона (штата).
type ShippingZone struct {
	ID            int64
	Name          string
	State         string
	Cost          int64 // в кобо
	EstimatedDays string
}
