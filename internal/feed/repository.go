package feed

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/account"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/tweet"
)

// Repository is the primary-store read path behind the cache. Queries run
// with the request context so a cancelled feed request aborts the query.
type Repository interface {
	ListPage(ctx context.Context, offset, limit int) ([]TweetSnapshot, error)
	ListByUsername(ctx context.Context, username string) ([]TweetSnapshot, error)
}

type repository struct{ store *db.Store }

func NewRepository(s *db.Store) Repository { return &repository{store: s} }

type pageRow struct {
	ID            uint
	Content       string
	LikesCount    int
	RetweetsCount int
	CreatedAt     time.Time
	AuthorID      string
	Username      string
	DisplayName   string
}

func (r *repository) ListPage(ctx context.Context, offset, limit int) ([]TweetSnapshot, error) {
	var rows []pageRow
	err := r.store.Base.WithContext(ctx).
		Table("tweets").
		Select("tweets.id, tweets.content, tweets.likes_count, tweets.retweets_count, tweets.created_at, " +
			"accounts.id AS author_id, accounts.username, accounts.display_name").
		Joins("JOIN accounts ON accounts.id = tweets.author_id").
		Order("tweets.created_at DESC, tweets.id DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return toSnapshots(rows), nil
}

func (r *repository) ListByUsername(ctx context.Context, username string) ([]TweetSnapshot, error) {
	var a account.Account
	err := r.store.Base.WithContext(ctx).First(&a, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("account not found")
		}
		return nil, err
	}

	var tweets []tweet.Tweet
	err = r.store.Base.WithContext(ctx).
		Where("author_id = ?", a.ID).
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}

	out := make([]TweetSnapshot, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, TweetSnapshot{
			ID:            t.ID,
			Content:       t.Content,
			LikesCount:    t.LikesCount,
			RetweetsCount: t.RetweetsCount,
			CreatedAt:     t.CreatedAt,
			Author:        AuthorSnapshot{ID: a.ID, Username: a.Username, DisplayName: a.DisplayName},
		})
	}
	return out, nil
}

func toSnapshots(rows []pageRow) []TweetSnapshot {
	out := make([]TweetSnapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, TweetSnapshot{
			ID:            row.ID,
			Content:       row.Content,
			LikesCount:    row.LikesCount,
			RetweetsCount: row.RetweetsCount,
			CreatedAt:     row.CreatedAt,
			Author: AuthorSnapshot{
				ID:          row.AuthorID,
				Username:    row.Username,
				DisplayName: row.DisplayName,
			},
		})
	}
	return out
}
