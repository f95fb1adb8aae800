package feed

import (
	"context"
	"fmt"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
)

type Service interface {
	GetFeed(ctx context.Context, pageIndex, pageSize int) ([]TweetSnapshot, error)
	GetUserFeed(ctx context.Context, username string) ([]TweetSnapshot, error)
}

type service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository, cache Cache) Service {
	return &service{repo: repo, cache: cache}
}

func CacheKey(pageIndex, pageSize int) string {
	return fmt.Sprintf("tweets-%d-%d", pageIndex, pageSize)
}

// GetFeed returns one reverse-chronological page, cache first. Empty
// pages are never cached, so a tweet landing in an empty range shows up
// on the next call rather than after the TTL.
func (s *service) GetFeed(ctx context.Context, pageIndex, pageSize int) ([]TweetSnapshot, error) {
	if pageIndex < 0 {
		return nil, apperr.Invalid("page index must not be negative")
	}
	if pageSize <= 0 {
		return nil, apperr.Invalid("page size must be positive")
	}

	key := CacheKey(pageIndex, pageSize)
	if items, ok := s.cache.GetPage(ctx, key); ok {
		return items, nil
	}

	items, err := s.repo.ListPage(ctx, pageIndex*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 && ctx.Err() == nil {
		s.cache.SetPage(ctx, key, items)
	}
	return items, nil
}

// GetUserFeed bypasses the cache entirely.
func (s *service) GetUserFeed(ctx context.Context, username string) ([]TweetSnapshot, error) {
	return s.repo.ListByUsername(ctx, username)
}
