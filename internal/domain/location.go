package domain

import "time"

// StoreLocation описывает физическую точку продаж.
type StoreLocation struct {
	ID        int64
	Name      string
	Address   string
	City      string
	State     string
	Phone     string
	Hours     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

func NewStoreLocation(name, address, city, state, phone, hours string) *StoreLocation {
	return &StoreLocation{
		Name:     name,
		Address:  address,
		City:     city,
		State:    state,
		Phone:    phone,
		Hours:    hours,
		IsActive: true,
	}
}
