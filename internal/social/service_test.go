package social

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/counter"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
)

// state is an in-memory stand-in for the relational store: accounts and
// tweets with their counters, plus the three edge sets.
type state struct {
	accounts map[string]map[string]int // id -> counter column -> value
	tweets   map[uint]map[string]int   // id -> counter column -> value
	authors  map[uint]string
	follows  map[string]bool
	likes    map[string]bool
	retweets map[string]bool
}

func newState() *state {
	return &state{
		accounts: map[string]map[string]int{},
		tweets:   map[uint]map[string]int{},
		authors:  map[uint]string{},
		follows:  map[string]bool{},
		likes:    map[string]bool{},
		retweets: map[string]bool{},
	}
}

func (s *state) addAccount(id string) {
	s.accounts[id] = map[string]int{"followers_count": 0, "following_count": 0, "tweets_count": 0}
}

func (s *state) addTweet(id uint, authorID string) {
	s.tweets[id] = map[string]int{"likes_count": 0, "retweets_count": 0}
	s.authors[id] = authorID
}

func (s *state) clone() *state {
	c := newState()
	for id, m := range s.accounts {
		c.accounts[id] = map[string]int{}
		for k, v := range m {
			c.accounts[id][k] = v
		}
	}
	for id, m := range s.tweets {
		c.tweets[id] = map[string]int{}
		for k, v := range m {
			c.tweets[id][k] = v
		}
	}
	for k, v := range s.authors {
		c.authors[k] = v
	}
	for k, v := range s.follows {
		c.follows[k] = v
	}
	for k, v := range s.likes {
		c.likes[k] = v
	}
	for k, v := range s.retweets {
		c.retweets[k] = v
	}
	return c
}

// fakeRepo serializes transactions and commits by swapping the working
// copy in, so a failed transaction leaves the live state untouched.
type fakeRepo struct {
	mu         sync.Mutex
	live       *state
	errOnApply error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{live: newState()} }

func (r *fakeRepo) InTx(fn func(Graph) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	work := r.live.clone()
	if err := fn(&fakeGraph{st: work, errOnApply: r.errOnApply}); err != nil {
		return err
	}
	r.live = work
	return nil
}

type fakeGraph struct {
	st         *state
	errOnApply error
}

func edgeKey(a string, b any) string { return fmt.Sprintf("%s|%v", a, b) }

func (g *fakeGraph) AccountExists(id string) (bool, error) {
	_, ok := g.st.accounts[id]
	return ok, nil
}

func (g *fakeGraph) TweetAuthor(id uint) (string, error) {
	a, ok := g.st.authors[id]
	if !ok {
		return "", apperr.NotFound("tweet not found")
	}
	return a, nil
}

func (g *fakeGraph) HasFollow(follower, target string) (bool, error) {
	return g.st.follows[edgeKey(follower, target)], nil
}

func (g *fakeGraph) CreateFollow(f *Follow) error {
	k := edgeKey(f.FollowerID, f.TargetID)
	if g.st.follows[k] {
		return apperr.Conflict("edge already exists", nil)
	}
	g.st.follows[k] = true
	return nil
}

func (g *fakeGraph) DeleteFollow(follower, target string) (bool, error) {
	k := edgeKey(follower, target)
	if !g.st.follows[k] {
		return false, nil
	}
	delete(g.st.follows, k)
	return true, nil
}

func (g *fakeGraph) HasLike(accountID string, tweetID uint) (bool, error) {
	return g.st.likes[edgeKey(accountID, tweetID)], nil
}

func (g *fakeGraph) CreateLike(l *Like) error {
	k := edgeKey(l.AccountID, l.TweetID)
	if g.st.likes[k] {
		return apperr.Conflict("edge already exists", nil)
	}
	g.st.likes[k] = true
	return nil
}

func (g *fakeGraph) HasRetweet(accountID string, tweetID uint) (bool, error) {
	return g.st.retweets[edgeKey(accountID, tweetID)], nil
}

func (g *fakeGraph) CreateRetweet(rt *Retweet) error {
	k := edgeKey(rt.AccountID, rt.TweetID)
	if g.st.retweets[k] {
		return apperr.Conflict("edge already exists", nil)
	}
	g.st.retweets[k] = true
	return nil
}

func (g *fakeGraph) ApplyDeltas(deltas []counter.Delta) error {
	if g.errOnApply != nil {
		return g.errOnApply
	}
	for _, d := range deltas {
		var m map[string]int
		switch d.Table {
		case "accounts":
			m = g.st.accounts[d.ID.(string)]
		case "tweets":
			m = g.st.tweets[d.ID.(uint)]
		}
		if m == nil {
			return fmt.Errorf("no row for delta %+v", d)
		}
		v := m[d.Column] + d.N
		if v < 0 {
			v = 0
		}
		m[d.Column] = v
	}
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *fakeNotifier) Notify(_ context.Context, accountID, kind, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, kind+":"+accountID)
}

func newTestService() (*fakeRepo, *fakeNotifier, Service) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	return repo, notifier, NewService(repo, notifier)
}

func TestFollowIncrementsBothCounters(t *testing.T) {
	repo, notifier, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")

	require.NoError(t, svc.Follow(context.Background(), "alice", "bob"))

	require.True(t, repo.live.follows[edgeKey("alice", "bob")])
	require.Equal(t, 1, repo.live.accounts["bob"]["followers_count"])
	require.Equal(t, 1, repo.live.accounts["alice"]["following_count"])
	require.Equal(t, 0, repo.live.accounts["alice"]["followers_count"])
	require.Equal(t, []string{"follow:bob"}, notifier.calls)
}

func TestFollowDuplicate(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")

	require.NoError(t, svc.Follow(context.Background(), "alice", "bob"))
	err := svc.Follow(context.Background(), "alice", "bob")
	require.True(t, apperr.Is(err, apperr.KindAlreadyExists))

	require.Equal(t, 1, repo.live.accounts["bob"]["followers_count"])
	require.Equal(t, 1, repo.live.accounts["alice"]["following_count"])
}

func TestFollowSelf(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	err := svc.Follow(context.Background(), "alice", "alice")
	require.True(t, apperr.Is(err, apperr.KindInvalid))
}

func TestFollowUnknownAccount(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	err := svc.Follow(context.Background(), "alice", "ghost")
	require.True(t, apperr.Is(err, apperr.KindNotFound))
	err = svc.Follow(context.Background(), "ghost", "alice")
	require.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUnfollowRestoresCounters(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")

	require.NoError(t, svc.Follow(context.Background(), "alice", "bob"))
	require.NoError(t, svc.Unfollow(context.Background(), "alice", "bob"))

	require.False(t, repo.live.follows[edgeKey("alice", "bob")])
	require.Equal(t, 0, repo.live.accounts["bob"]["followers_count"])
	require.Equal(t, 0, repo.live.accounts["alice"]["following_count"])
}

func TestUnfollowWithoutEdge(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")

	err := svc.Unfollow(context.Background(), "alice", "bob")
	require.True(t, apperr.Is(err, apperr.KindNotFound))
	require.Equal(t, 0, repo.live.accounts["bob"]["followers_count"])
}

func TestUnfollowClampsAtZero(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")
	// drifted state: edge present, counters already at zero
	repo.live.follows[edgeKey("alice", "bob")] = true

	require.NoError(t, svc.Unfollow(context.Background(), "alice", "bob"))
	require.Equal(t, 0, repo.live.accounts["bob"]["followers_count"])
	require.Equal(t, 0, repo.live.accounts["alice"]["following_count"])
}

func TestConcurrentFollowExactlyOneWins(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Follow(context.Background(), "alice", "bob")
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperr.Is(err, apperr.KindAlreadyExists) || apperr.Is(err, apperr.KindConflict):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, dup)
	require.Equal(t, 1, repo.live.accounts["bob"]["followers_count"])
	require.Equal(t, 1, repo.live.accounts["alice"]["following_count"])
}

func TestLikeTweet(t *testing.T) {
	repo, notifier, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")
	repo.live.addTweet(1, "bob")

	require.NoError(t, svc.LikeTweet(context.Background(), "alice", 1))
	require.Equal(t, 1, repo.live.tweets[1]["likes_count"])
	require.Equal(t, []string{"like:bob"}, notifier.calls)

	err := svc.LikeTweet(context.Background(), "alice", 1)
	require.True(t, apperr.Is(err, apperr.KindAlreadyExists))
	require.Equal(t, 1, repo.live.tweets[1]["likes_count"])
}

func TestLikeMissingTweet(t *testing.T) {
	repo, _, svc := newTestService()
	repo.live.addAccount("alice")
	err := svc.LikeTweet(context.Background(), "alice", 42)
	require.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestRetweetCountsAsAuthoredAction(t *testing.T) {
	repo, notifier, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")
	repo.live.addTweet(1, "bob")

	require.NoError(t, svc.Retweet(context.Background(), "alice", 1, "worth a read"))
	require.Equal(t, 1, repo.live.tweets[1]["retweets_count"])
	require.Equal(t, 1, repo.live.accounts["alice"]["tweets_count"])
	require.Equal(t, []string{"retweet:bob"}, notifier.calls)

	err := svc.Retweet(context.Background(), "alice", 1, "")
	require.True(t, apperr.Is(err, apperr.KindAlreadyExists))
	require.Equal(t, 1, repo.live.accounts["alice"]["tweets_count"])
}

func TestFollowRollsBackOnCounterFailure(t *testing.T) {
	repo, notifier, svc := newTestService()
	repo.live.addAccount("alice")
	repo.live.addAccount("bob")
	repo.errOnApply = fmt.Errorf("disk on fire")

	err := svc.Follow(context.Background(), "alice", "bob")
	require.Error(t, err)

	// full rollback: no edge, no counter change, no notification
	require.False(t, repo.live.follows[edgeKey("alice", "bob")])
	require.Equal(t, 0, repo.live.accounts["bob"]["followers_count"])
	require.Equal(t, 0, repo.live.accounts["alice"]["following_count"])
	require.Empty(t, notifier.calls)
}
