package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/Ripeplantain/Twitter-Backend-Api/configs"
)

type Store struct{ Base *gorm.DB }

// OpenFromEnv connects to the primary, optionally registers read replicas,
// and enables gorm's error translation so duplicate-key violations surface
// as gorm.ErrDuplicatedKey.
func OpenFromEnv(cfg *configs.Config) *Store {
	base, err := openWithRetry(cfg.DSN(), 8, 2*time.Second)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	sqlDB, _ := base.DB()
	sqlDB.SetMaxOpenConns(40)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if len(cfg.ReplicaDSNs) > 0 {
		var readers []gorm.Dialector
		for _, dsn := range cfg.ReplicaDSNs {
			readers = append(readers, postgres.Open(dsn))
		}
		r := dbresolver.Register(dbresolver.Config{
			Sources:  []gorm.Dialector{postgres.Open(cfg.DSN())},
			Replicas: readers,
			Policy:   dbresolver.RandomPolicy{},
		})
		if err := base.Use(r); err != nil {
			log.Fatalf("dbresolver: %v", err)
		}
	}

	return &Store{Base: base}
}

func openWithRetry(dsn string, attempts int, sleep time.Duration) (*gorm.DB, error) {
	var last error
	for i := 1; i <= attempts; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			if s, e := db.DB(); e == nil && s != nil {
				if perr := pingWithTimeout(s, 2*time.Second); perr == nil {
					return db, nil
				} else {
					last = perr
				}
			} else {
				last = e
			}
		} else {
			last = err
		}
		time.Sleep(sleep)
		if sleep < 8*time.Second {
			sleep *= 2
		}
	}
	return nil, last
}

func pingWithTimeout(sqlDB *sql.DB, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- sqlDB.Ping() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("db ping timeout after %s", timeout)
	}
}
