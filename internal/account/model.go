package account

import "time"

// Account holds the denormalized counters; outside an in-flight
// transaction each count matches the cardinality of its edge set.
type Account struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:50" json:"username"`
	DisplayName    string    `gorm:"size:50" json:"display_name"`
	Bio            string    `gorm:"size:255" json:"bio"`
	Location       string    `gorm:"size:50" json:"location"`
	Verified       bool      `json:"verified"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	TweetsCount    int       `json:"tweets_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
