package notification

import (
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
)

type Repository interface {
	Create(n *Notification) error
	ListByAccount(accountID string, limit, offset int) ([]Notification, error)
}

type repository struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repository{store: s} }

func (r *repository) Create(n *Notification) error {
	return r.store.Base.Create(n).Error
}

func (r *repository) ListByAccount(accountID string, limit, offset int) ([]Notification, error) {
	var out []Notification
	err := r.store.Base.
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}
