package feed

import "time"

// AuthorSnapshot is frozen at cache-write time; a later profile change
// stays invisible in cached pages until the TTL lapses.
type AuthorSnapshot struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type TweetSnapshot struct {
	ID            uint           `json:"id"`
	Content       string         `json:"content"`
	LikesCount    int            `json:"likes_count"`
	RetweetsCount int            `json:"retweets_count"`
	CreatedAt     time.Time      `json:"created_at"`
	Author        AuthorSnapshot `json:"author"`
}
