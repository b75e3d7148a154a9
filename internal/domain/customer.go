package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer описывает покупателя
type Customer struct {
	ID        uuid.UUID
	Name      string
	Status    CustomerStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCustomer(id uuid.UUID, name string) *Customer {
	return &Customer{
		ID:     id,
		Name:   name,
		Status: CustomerActive,
	}
}
