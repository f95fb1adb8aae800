package social

import (
	"context"
	"time"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/counter"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
)

// Notifier is the fire-and-forget notification sink. Delivery failures
// never affect the triggering transaction.
type Notifier interface {
	Notify(ctx context.Context, accountID, kind, message string)
}

type Service interface {
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
	LikeTweet(ctx context.Context, accountID string, tweetID uint) error
	Retweet(ctx context.Context, accountID string, tweetID uint, caption string) error
}

type service struct {
	repo     Repository
	notifier Notifier
}

func NewService(r Repository, n Notifier) Service {
	return &service{repo: r, notifier: n}
}

func (s *service) notify(ctx context.Context, accountID, kind, message string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, accountID, kind, message)
	}
}

func (s *service) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return apperr.Invalid("cannot follow yourself")
	}
	err := s.repo.InTx(func(g Graph) error {
		for _, id := range []string{followerID, targetID} {
			ok, err := g.AccountExists(id)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("account not found")
			}
		}
		ok, err := g.HasFollow(followerID, targetID)
		if err != nil {
			return err
		}
		if ok {
			return apperr.AlreadyExists("already following this account")
		}
		f := &Follow{FollowerID: followerID, TargetID: targetID, CreatedAt: time.Now().UTC()}
		if err := g.CreateFollow(f); err != nil {
			return err
		}
		return g.ApplyDeltas(counter.Reconcile(counter.ActionFollow, counter.Forward,
			counter.Refs{ActorID: followerID, SubjectID: targetID}))
	})
	if err != nil {
		return err
	}
	s.notify(ctx, targetID, "follow", "you have a new follower")
	return nil
}

func (s *service) Unfollow(ctx context.Context, followerID, targetID string) error {
	return s.repo.InTx(func(g Graph) error {
		deleted, err := g.DeleteFollow(followerID, targetID)
		if err != nil {
			return err
		}
		if !deleted {
			return apperr.NotFound("not following this account")
		}
		return g.ApplyDeltas(counter.Reconcile(counter.ActionFollow, counter.Reverse,
			counter.Refs{ActorID: followerID, SubjectID: targetID}))
	})
}

func (s *service) LikeTweet(ctx context.Context, accountID string, tweetID uint) error {
	var authorID string
	err := s.repo.InTx(func(g Graph) error {
		ok, err := g.AccountExists(accountID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("account not found")
		}
		if authorID, err = g.TweetAuthor(tweetID); err != nil {
			return err
		}
		liked, err := g.HasLike(accountID, tweetID)
		if err != nil {
			return err
		}
		if liked {
			return apperr.AlreadyExists("tweet already liked")
		}
		l := &Like{AccountID: accountID, TweetID: tweetID, CreatedAt: time.Now().UTC()}
		if err := g.CreateLike(l); err != nil {
			return err
		}
		return g.ApplyDeltas(counter.Reconcile(counter.ActionLike, counter.Forward,
			counter.Refs{ActorID: accountID, TweetID: tweetID}))
	})
	if err != nil {
		return err
	}
	s.notify(ctx, authorID, "like", "your tweet was liked")
	return nil
}

func (s *service) Retweet(ctx context.Context, accountID string, tweetID uint, caption string) error {
	if len(caption) > 280 {
		return apperr.Invalid("caption exceeds 280 characters")
	}
	var authorID string
	err := s.repo.InTx(func(g Graph) error {
		ok, err := g.AccountExists(accountID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("account not found")
		}
		if authorID, err = g.TweetAuthor(tweetID); err != nil {
			return err
		}
		done, err := g.HasRetweet(accountID, tweetID)
		if err != nil {
			return err
		}
		if done {
			return apperr.AlreadyExists("tweet already retweeted")
		}
		rt := &Retweet{AccountID: accountID, TweetID: tweetID, Caption: caption, CreatedAt: time.Now().UTC()}
		if err := g.CreateRetweet(rt); err != nil {
			return err
		}
		return g.ApplyDeltas(counter.Reconcile(counter.ActionRetweet, counter.Forward,
			counter.Refs{ActorID: accountID, TweetID: tweetID}))
	})
	if err != nil {
		return err
	}
	s.notify(ctx, authorID, "retweet", "your tweet was retweeted")
	return nil
}
