package account

import "strings"

type Service interface {
	Create(username, displayName, bio, location string) (*Account, error)
	GetByID(id string) (*Account, error)
	GetByUsername(username string) (*Account, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(username, displayName, bio, location string) (*Account, error) {
	a := &Account{
		Username:    strings.ToLower(strings.TrimSpace(username)),
		DisplayName: displayName,
		Bio:         bio,
		Location:    location,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(id string) (*Account, error) { return s.repo.GetByID(id) }

func (s *service) GetByUsername(username string) (*Account, error) {
	return s.repo.GetByUsername(username)
}
