package services

import (
	"database/sql"
	"errors"

	"shopweaver/internal/domain"
	"shopweaver/internal/repos"
)

var ErrNoStores = errors.New("no active stores available")

type StoreService struct {
	Stores    *repos.StoreRepo
	DefaultID string
}

func NewStoreService(stores *repos.StoreRepo, defaultID string) *StoreService {
	return &StoreService{Stores: stores, DefaultID: defaultID}
}

// Resolve picks the current store for a request: explicit id first, then the
// request host (custom storefront domains), then the configured default, then
// the first active store.
func (s *StoreService) Resolve(id, host string) (domain.Store, error) {
	if id != "" {
		if st, err := s.Stores.Get(id); err == nil {
			return st, nil
		} else if err != sql.ErrNoRows {
			return domain.Store{}, err
		}
	}
	if host != "" {
		if st, err := s.Stores.ByDomain(host); err == nil {
			return st, nil
		} else if err != sql.ErrNoRows {
			return domain.Store{}, err
		}
	}
	if s.DefaultID != "" {
		if st, err := s.Stores.Get(s.DefaultID); err == nil {
			return st, nil
		} else if err != sql.ErrNoRows {
			return domain.Store{}, err
		}
	}
	active, err := s.Stores.ListActive()
	if err != nil {
		return domain.Store{}, err
	}
	if len(active) == 0 {
		return domain.Store{}, ErrNoStores
	}
	return active[0], nil
}

func (s *StoreService) ListActive() ([]domain.Store, error) {
	return s.Stores.ListActive()
}
