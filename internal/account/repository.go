package account

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
)

type Repository interface {
	Create(a *Account) error
	GetByID(id string) (*Account, error)
	GetByUsername(username string) (*Account, error)
}

type repository struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repository{store: s} }

func (r *repository) Create(a *Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := r.store.Base.Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.AlreadyExists("username already taken")
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(id string) (*Account, error) {
	var a Account
	if err := r.store.Base.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUsername(username string) (*Account, error) {
	var a Account
	if err := r.store.Base.First(&a, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, err
	}
	return &a, nil
}
