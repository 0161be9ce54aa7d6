package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/mnp/team-roster/internal/domain"
	"github.com/mnp/team-roster/internal/repository"
)

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo repository.TeamRepository
	clock    clockwork.Clock
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, clock clockwork.Clock) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		clock:    clock,
	}
}

// Create валидирует команду и сохраняет запись
func (s *TeamService) Create(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if err := team.Validate(); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// Get получает команду с развернутыми записями игроков
func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

// ListIDs возвращает идентификаторы всех команд
func (s *TeamService) ListIDs(ctx context.Context) ([]string, error) {
	return s.teamRepo.ListIDs(ctx)
}

// Delete удаляет команду; записи игроков при этом не каскадируются
func (s *TeamService) Delete(ctx context.Context, id string) error {
	return s.teamRepo.Delete(ctx, id)
}

// AddPlayer добавляет игрока в команду: либо создает нового игрока с
// привязкой к команде, либо переводит существующего. Обе записи пишутся
// в одной транзакции, поэтому частично выполненного состояния не бывает.
// Все промежуточные значения локальны для вызова.
func (s *TeamService) AddPlayer(ctx context.Context, teamID string, input domain.AddPlayerInput) (*domain.Team, error) {
	// Сначала разрешаем команду: неизвестная команда дает not found
	// независимо от содержимого запроса
	exists, err := s.teamRepo.Exists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &domain.NotFoundError{Resource: "team", ID: teamID}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ExistingPlayerID != "" {
		return s.teamRepo.LinkExistingPlayer(ctx, teamID, input.ExistingPlayerID)
	}

	player := &domain.Player{
		Name:      input.NewPlayer.Name,
		Email:     input.NewPlayer.Email,
		CreatedAt: s.clock.Now().UTC(),
		TeamID:    teamID,
	}
	if err := player.Validate(); err != nil {
		return nil, err
	}

	return s.teamRepo.LinkNewPlayer(ctx, teamID, player)
}
