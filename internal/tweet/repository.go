package tweet

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/counter"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
)

type Repository interface {
	// CreateWithCounter inserts the tweet and bumps the author's
	// tweets_count in one transaction.
	CreateWithCounter(t *Tweet) error
	GetByID(id uint) (*Tweet, error)
	Update(t *Tweet) error
	Delete(id uint) error
}

type repository struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repository{store: s} }

func (r *repository) CreateWithCounter(t *Tweet) error {
	return r.store.Base.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		return counter.Apply(tx, counter.Reconcile(
			counter.ActionTweet, counter.Forward, counter.Refs{ActorID: t.AuthorID},
		))
	})
}

func (r *repository) GetByID(id uint) (*Tweet, error) {
	var t Tweet
	if err := r.store.Base.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tweet not found")
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(t *Tweet) error {
	return r.store.Base.Save(t).Error
}

func (r *repository) Delete(id uint) error {
	return r.store.Base.Delete(&Tweet{}, id).Error
}
