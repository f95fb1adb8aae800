package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/kafka"
)

type Service interface {
	// Notify persists the notification and pushes it to the sink.
	// Fire-and-forget: failures are logged, never returned, so they can
	// never roll back the action that triggered them.
	Notify(ctx context.Context, accountID, kind, message string)
	ListByAccount(accountID string, limit, offset int) ([]Notification, error)
}

type service struct {
	repo Repository
	sink *kafka.Writer // nil when no broker is configured
}

func NewService(r Repository, sink *kafka.Writer) Service {
	return &service{repo: r, sink: sink}
}

type event struct {
	AccountID string `json:"account_id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

func (s *service) Notify(ctx context.Context, accountID, kind, message string) {
	n := &Notification{AccountID: accountID, Kind: kind, Message: message}
	if err := s.repo.Create(n); err != nil {
		log.Printf("notification persist: %v", err)
	}
	if s.sink == nil {
		return
	}
	b, _ := json.Marshal(event{AccountID: accountID, Kind: kind, Message: message})
	if err := s.sink.Publish(ctx, accountID, b); err != nil {
		log.Printf("notification publish: %v", err)
	}
}

func (s *service) ListByAccount(accountID string, limit, offset int) ([]Notification, error) {
	return s.repo.ListByAccount(accountID, limit, offset)
}
