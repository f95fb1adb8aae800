package feed

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
)

type fakeCache struct {
	pages map[string][]TweetSnapshot
	sets  int
}

func newFakeCache() *fakeCache { return &fakeCache{pages: map[string][]TweetSnapshot{}} }

func (c *fakeCache) GetPage(_ context.Context, key string) ([]TweetSnapshot, bool) {
	items, ok := c.pages[key]
	return items, ok
}

func (c *fakeCache) SetPage(_ context.Context, key string, items []TweetSnapshot) {
	c.pages[key] = items
	c.sets++
}

type fakeFeedRepo struct {
	tweets    []TweetSnapshot
	byUser    map[string][]TweetSnapshot
	pageCalls int
}

func (r *fakeFeedRepo) add(id uint, content string, at time.Time) {
	r.tweets = append(r.tweets, TweetSnapshot{
		ID: id, Content: content, CreatedAt: at,
		Author: AuthorSnapshot{ID: "author", Username: "author", DisplayName: "Author"},
	})
}

func (r *fakeFeedRepo) ListPage(_ context.Context, offset, limit int) ([]TweetSnapshot, error) {
	r.pageCalls++
	sorted := make([]TweetSnapshot, len(r.tweets))
	copy(sorted, r.tweets)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID > sorted[j].ID
	})
	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (r *fakeFeedRepo) ListByUsername(_ context.Context, username string) ([]TweetSnapshot, error) {
	items, ok := r.byUser[username]
	if !ok {
		return nil, apperr.NotFound("account not found")
	}
	return items, nil
}

func TestGetFeedPagination(t *testing.T) {
	repo := &fakeFeedRepo{}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 30; i++ {
		repo.add(uint(i), fmt.Sprintf("tweet %d", i), base.Add(time.Duration(i)*time.Minute))
	}
	svc := NewService(repo, newFakeCache())

	first, err := svc.GetFeed(context.Background(), 0, 25)
	require.NoError(t, err)
	require.Len(t, first, 25)
	require.Equal(t, uint(30), first[0].ID)
	require.Equal(t, uint(6), first[24].ID)

	second, err := svc.GetFeed(context.Background(), 1, 25)
	require.NoError(t, err)
	require.Len(t, second, 5)
	require.Equal(t, uint(5), second[0].ID)
	require.Equal(t, uint(1), second[4].ID)
}

func TestGetFeedServesCachedPage(t *testing.T) {
	repo := &fakeFeedRepo{}
	repo.add(1, "first", time.Now().UTC())
	cache := newFakeCache()
	svc := NewService(repo, cache)

	page, err := svc.GetFeed(context.Background(), 0, 25)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, 1, repo.pageCalls)
	require.Equal(t, 1, cache.sets)

	// A new tweet stays invisible while the cached page is live.
	repo.add(2, "second", time.Now().UTC())
	page, err = svc.GetFeed(context.Background(), 0, 25)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, 1, repo.pageCalls)
}

func TestGetFeedNeverCachesEmptyPages(t *testing.T) {
	repo := &fakeFeedRepo{}
	cache := newFakeCache()
	svc := NewService(repo, cache)

	page, err := svc.GetFeed(context.Background(), 0, 25)
	require.NoError(t, err)
	require.Empty(t, page)
	require.Equal(t, 0, cache.sets)

	// The first tweet shows up immediately, not after a TTL.
	repo.add(1, "first", time.Now().UTC())
	page, err = svc.GetFeed(context.Background(), 0, 25)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, 2, repo.pageCalls)
}

func TestGetFeedSkipsCacheWriteOnCancelledContext(t *testing.T) {
	repo := &fakeFeedRepo{}
	repo.add(1, "first", time.Now().UTC())
	cache := newFakeCache()
	svc := NewService(repo, cache)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.GetFeed(ctx, 0, 25)
	require.NoError(t, err)
	require.Equal(t, 0, cache.sets)
}

func TestGetFeedRejectsBadPaging(t *testing.T) {
	svc := NewService(&fakeFeedRepo{}, newFakeCache())

	_, err := svc.GetFeed(context.Background(), -1, 25)
	require.True(t, apperr.Is(err, apperr.KindInvalid))

	_, err = svc.GetFeed(context.Background(), 0, 0)
	require.True(t, apperr.Is(err, apperr.KindInvalid))
}

func TestGetUserFeedBypassesCache(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeFeedRepo{byUser: map[string][]TweetSnapshot{
		"alice": {{ID: 1, Content: "hello", CreatedAt: now}},
	}}
	cache := newFakeCache()
	svc := NewService(repo, cache)

	items, err := svc.GetUserFeed(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 0, cache.sets)

	_, err = svc.GetUserFeed(context.Background(), "nobody")
	require.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCacheKeyFormat(t *testing.T) {
	require.Equal(t, "tweets-0-25", CacheKey(0, 25))
	require.Equal(t, "tweets-3-10", CacheKey(3, 10))
}
