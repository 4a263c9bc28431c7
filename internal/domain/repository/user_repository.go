package repository

import "github.com/reaksa/stockford-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos de lectura devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// Delete elimina el usuario. ErrNotFound si no existe.
	Delete(id string) error
	List() ([]*entity.User, error)
}
