// Package counter is the only code path that writes denormalized counters.
// Reconcile decides which counters an action touches; Apply executes the
// deltas inside the caller's transaction.
package counter

type Action int

const (
	ActionFollow Action = iota + 1
	ActionLike
	ActionRetweet
	ActionTweet
)

type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// Refs names the rows an action touches.
type Refs struct {
	ActorID   string
	SubjectID string // followed account, for ActionFollow
	TweetID   uint   // liked/retweeted tweet
}

type Delta struct {
	Table  string
	Key    string
	ID     any
	Column string
	N      int
}

// Reconcile maps (action, direction) onto the counter deltas the action
// owes. Direction Reverse undoes what Forward applied.
func Reconcile(a Action, dir Direction, refs Refs) []Delta {
	n := int(dir)
	switch a {
	case ActionFollow:
		return []Delta{
			{Table: "accounts", Key: "id", ID: refs.SubjectID, Column: "followers_count", N: n},
			{Table: "accounts", Key: "id", ID: refs.ActorID, Column: "following_count", N: n},
		}
	case ActionLike:
		return []Delta{
			{Table: "tweets", Key: "id", ID: refs.TweetID, Column: "likes_count", N: n},
		}
	case ActionRetweet:
		return []Delta{
			{Table: "tweets", Key: "id", ID: refs.TweetID, Column: "retweets_count", N: n},
			{Table: "accounts", Key: "id", ID: refs.ActorID, Column: "tweets_count", N: n},
		}
	case ActionTweet:
		return []Delta{
			{Table: "accounts", Key: "id", ID: refs.ActorID, Column: "tweets_count", N: n},
		}
	}
	return nil
}
