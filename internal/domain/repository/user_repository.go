package repository

import "github.com/netpulse/netpulse-api/internal/domain/entity"

// UserRepository is the persistence port for operator accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	Update(user *entity.User) error
}
