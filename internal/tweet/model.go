package tweet

import "time"

const MaxContentLen = 280

type Tweet struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AuthorID      string    `gorm:"index;size:64" json:"author_id"`
	Content       string    `gorm:"size:280" json:"content"`
	LikesCount    int       `json:"likes_count"`
	RetweetsCount int       `json:"retweets_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
