package social

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/account"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/counter"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/tweet"
)

// Graph is the view of the store a social action sees inside its
// transaction: existence checks, edge mutations, counter deltas.
type Graph interface {
	AccountExists(id string) (bool, error)
	TweetAuthor(id uint) (string, error)
	HasFollow(followerID, targetID string) (bool, error)
	CreateFollow(f *Follow) error
	DeleteFollow(followerID, targetID string) (bool, error)
	HasLike(accountID string, tweetID uint) (bool, error)
	CreateLike(l *Like) error
	HasRetweet(accountID string, tweetID uint) (bool, error)
	CreateRetweet(rt *Retweet) error
	ApplyDeltas(deltas []counter.Delta) error
}

// Repository runs a function against the graph inside one transaction
// that commits on nil and rolls back on error. Mutations deliberately do
// not take a context: an action runs to commit or rollback.
type Repository interface {
	InTx(fn func(Graph) error) error
}

type repository struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repository{store: s} }

func (r *repository) InTx(fn func(Graph) error) error {
	return r.store.Base.Transaction(func(tx *gorm.DB) error {
		return fn(&graph{db: tx})
	})
}

type graph struct{ db *gorm.DB }

func (g *graph) AccountExists(id string) (bool, error) {
	var n int64
	err := g.db.Model(&account.Account{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (g *graph) TweetAuthor(id uint) (string, error) {
	var t tweet.Tweet
	if err := g.db.Select("author_id").First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("tweet not found")
		}
		return "", err
	}
	return t.AuthorID, nil
}

func (g *graph) HasFollow(followerID, targetID string) (bool, error) {
	var n int64
	err := g.db.Model(&Follow{}).
		Where("follower_id = ? AND target_id = ?", followerID, targetID).
		Count(&n).Error
	return n > 0, err
}

func (g *graph) CreateFollow(f *Follow) error {
	return translateDup(g.db.Create(f).Error)
}

func (g *graph) DeleteFollow(followerID, targetID string) (bool, error) {
	res := g.db.Delete(&Follow{}, "follower_id = ? AND target_id = ?", followerID, targetID)
	return res.RowsAffected > 0, res.Error
}

func (g *graph) HasLike(accountID string, tweetID uint) (bool, error) {
	var n int64
	err := g.db.Model(&Like{}).
		Where("account_id = ? AND tweet_id = ?", accountID, tweetID).
		Count(&n).Error
	return n > 0, err
}

func (g *graph) CreateLike(l *Like) error {
	return translateDup(g.db.Create(l).Error)
}

func (g *graph) HasRetweet(accountID string, tweetID uint) (bool, error) {
	var n int64
	err := g.db.Model(&Retweet{}).
		Where("account_id = ? AND tweet_id = ?", accountID, tweetID).
		Count(&n).Error
	return n > 0, err
}

func (g *graph) CreateRetweet(rt *Retweet) error {
	return translateDup(g.db.Create(rt).Error)
}

func (g *graph) ApplyDeltas(deltas []counter.Delta) error {
	return counter.Apply(g.db, deltas)
}

// translateDup maps a unique-constraint violation onto Conflict so a race
// that slipped past the precondition check reads as "already exists"
// rather than a server fault.
func translateDup(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("edge already exists", err)
	}
	return err
}
