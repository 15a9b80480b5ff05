package order

import (
	"context"
	"errors"
	"fmt"
)

// Service maintains the engine's mirror of host orders.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// Sync stores an order snapshot received from the host platform. Snapshots
// are full replacements, so replays are idempotent.
func (s *Service) Sync(ctx context.Context, ord *Order) error {
	if ord.ID == "" {
		return errors.New("order snapshot without id")
	}
	if err := s.repo.Upsert(ctx, ord); err != nil {
		return fmt.Errorf("upsert order %s: %w", ord.ID, err)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	ord, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return ord, nil
}
