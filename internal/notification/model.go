package notification

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID string    `gorm:"index;size:64" json:"account_id"`
	Kind      string    `gorm:"size:32" json:"kind"`
	Message   string    `gorm:"size:255" json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
