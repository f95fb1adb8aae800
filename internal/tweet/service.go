package tweet

import (
	"strings"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/account"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
)

type Service interface {
	Create(authorID, content string) (*Tweet, error)
	GetByID(id uint) (*Tweet, error)
	Update(id uint, authorID, content string) (*Tweet, error)
	Delete(id uint, authorID string) error
}

type service struct {
	repo     Repository
	accounts account.Repository
}

func NewService(r Repository, accounts account.Repository) Service {
	return &service{repo: r, accounts: accounts}
}

func checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperr.Invalid("content cannot be empty")
	}
	if len(content) > MaxContentLen {
		return apperr.Invalid("content exceeds 280 characters")
	}
	return nil
}

func (s *service) Create(authorID, content string) (*Tweet, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	if _, err := s.accounts.GetByID(authorID); err != nil {
		return nil, err
	}
	t := &Tweet{AuthorID: authorID, Content: content}
	if err := s.repo.CreateWithCounter(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(id uint) (*Tweet, error) { return s.repo.GetByID(id) }

func (s *service) Update(id uint, authorID, content string) (*Tweet, error) {
	if err := checkContent(content); err != nil {
		return nil, err
	}
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t.AuthorID != authorID {
		return nil, apperr.Unauthorized("not the tweet author")
	}
	t.Content = content
	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes the tweet without rolling back the author's tweets_count;
// the original backend behaves the same way.
func (s *service) Delete(id uint, authorID string) error {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t.AuthorID != authorID {
		return apperr.Unauthorized("not the tweet author")
	}
	return s.repo.Delete(id)
}
