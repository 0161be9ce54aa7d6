package repository

import (
	"context"

	"github.com/mnp/team-roster/internal/domain"
)

// PlayerRepository определяет методы для работы с данными игроков
type PlayerRepository interface {
	// Create сохраняет нового игрока и присваивает ему идентификатор
	Create(ctx context.Context, player *domain.Player) error

	// GetByID получает игрока по ID
	GetByID(ctx context.Context, id string) (*domain.Player, error)

	// ListIDs возвращает идентификаторы всех игроков
	ListIDs(ctx context.Context) ([]string, error)

	// Update применяет частичное обновление и возвращает число измененных записей
	Update(ctx context.Context, id string, upd domain.PlayerUpdate) (int64, error)

	// Delete удаляет игрока по ID
	Delete(ctx context.Context, id string) error
}

// TeamRepository определяет методы для работы с данными команд
type TeamRepository interface {
	// Create сохраняет новую команду и присваивает ей идентификатор
	Create(ctx context.Context, team *domain.Team) error

	// GetByID получает команду с развернутыми записями игроков
	GetByID(ctx context.Context, id string) (*domain.Team, error)

	// Exists проверяет существование команды
	Exists(ctx context.Context, id string) (bool, error)

	// ListIDs возвращает идентификаторы всех команд
	ListIDs(ctx context.Context) ([]string, error)

	// Delete удаляет команду по ID (игроки остаются)
	Delete(ctx context.Context, id string) error

	// LinkNewPlayer в одной транзакции создает игрока и добавляет его
	// идентификатор в список команды
	LinkNewPlayer(ctx context.Context, teamID string, player *domain.Player) (*domain.Team, error)

	// LinkExistingPlayer в одной транзакции переводит игрока в команду и
	// добавляет его идентификатор в список команды
	LinkExistingPlayer(ctx context.Context, teamID, playerID string) (*domain.Team, error)
}
