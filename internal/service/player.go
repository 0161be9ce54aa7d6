package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/mnp/team-roster/internal/domain"
	"github.com/mnp/team-roster/internal/repository"
)

// PlayerService handles business logic for players
type PlayerService struct {
	playerRepo repository.PlayerRepository
	clock      clockwork.Clock
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(playerRepo repository.PlayerRepository, clock clockwork.Clock) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		clock:      clock,
	}
}

// Create валидирует игрока, проставляет время создания и сохраняет запись
func (s *PlayerService) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if err := player.Validate(); err != nil {
		return nil, err
	}

	player.CreatedAt = s.clock.Now().UTC()

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// Get получает игрока по ID
func (s *PlayerService) Get(ctx context.Context, id string) (*domain.Player, error) {
	return s.playerRepo.GetByID(ctx, id)
}

// ListIDs возвращает идентификаторы всех игроков
func (s *PlayerService) ListIDs(ctx context.Context) ([]string, error) {
	return s.playerRepo.ListIDs(ctx)
}

// Update применяет частичное обновление и возвращает число измененных записей
func (s *PlayerService) Update(ctx context.Context, id string, upd domain.PlayerUpdate) (int64, error) {
	return s.playerRepo.Update(ctx, id, upd)
}

// Delete удаляет игрока по ID
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	return s.playerRepo.Delete(ctx, id)
}
