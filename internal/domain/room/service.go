package room

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateRoom(ctx context.Context, r *Room) error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Size <= 0 {
		return fmt.Errorf("size must be positive")
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *Service) SearchRoomsByName(ctx context.Context, name string) ([]*Room, error) {
	return s.repo.SearchByName(ctx, name)
}
