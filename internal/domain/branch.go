package domain

import (
	"time"

	"github.com/google/uuid"
)

// Branch описывает филиал, в котором совершена продажа
type Branch struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewBranch(id uuid.UUID, name string) *Branch {
	return &Branch{
		ID:   id,
		Name: name,
	}
}
