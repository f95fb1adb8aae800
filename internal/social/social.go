package social

import "time"

// Edge relations. Composite primary keys are the uniqueness backstop for
// the check-then-insert pattern: a concurrent duplicate insert fails at
// commit time instead of producing a second edge.

type Follow struct {
	FollowerID string    `gorm:"primaryKey;size:64" json:"follower_id"`
	TargetID   string    `gorm:"primaryKey;size:64" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Like struct {
	AccountID string    `gorm:"primaryKey;size:64" json:"account_id"`
	TweetID   uint      `gorm:"primaryKey" json:"tweet_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Retweet struct {
	AccountID string    `gorm:"primaryKey;size:64" json:"account_id"`
	TweetID   uint      `gorm:"primaryKey" json:"tweet_id"`
	Caption   string    `gorm:"size:280" json:"caption,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
