package domain

import "time"

// Customer описывает покупателя. Создаётся или обновляется по email
// при оформлении заказа.
type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCustomer(email, firstName, lastName, phone string) *Customer {
	return &Customer{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
}
