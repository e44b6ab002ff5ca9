package domain

import "time"

// Category описывает категорию товара
type Category struct {
	ID         int64
	Name       string
	Slug       string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewCategory(name string, slug string) *Category {
	return &Category{
		Name: name,
		Slug: slug,
	}
}
