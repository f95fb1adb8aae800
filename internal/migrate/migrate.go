package migrate

import (
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/account"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/notification"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/db"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/social"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/tweet"
)

func AutoMigrateAll(store *db.Store) error {
	return store.Base.AutoMigrate(
		&account.Account{},
		&tweet.Tweet{},
		&social.Follow{},
		&social.Like{},
		&social.Retweet{},
		&notification.Notification{},
	)
}
