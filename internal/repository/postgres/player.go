package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnp/team-roster/internal/domain"
)

// PlayerRepository реализует repository.PlayerRepository для PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создает новый экземпляр PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create сохраняет нового игрока и присваивает ему идентификатор
func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (id, name, email, created_at, team_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	player.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, query,
		player.ID, player.Name, player.Email, player.CreatedAt, player.TeamID)
	return err
}

// GetByID получает игрока по ID
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	query := `
		SELECT id, name, email, created_at, team_id
		FROM players
		WHERE id = $1
	`

	var player domain.Player
	err := r.db.QueryRow(ctx, query, id).Scan(
		&player.ID,
		&player.Name,
		&player.Email,
		&player.CreatedAt,
		&player.TeamID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "player", ID: id}
		}
		return nil, err
	}

	return &player, nil
}

// ListIDs возвращает идентификаторы всех игроков
func (r *PlayerRepository) ListIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM players ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Update применяет частичное обновление и возвращает число измененных записей
func (r *PlayerRepository) Update(ctx context.Context, id string, upd domain.PlayerUpdate) (int64, error) {
	query := `
		UPDATE players
		SET name    = COALESCE($2, name),
		    email   = COALESCE($3, email),
		    team_id = COALESCE($4, team_id)
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, upd.Name, upd.Email, upd.TeamID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

// Delete удаляет игрока по ID
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM players WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "player", ID: id}
	}

	return nil
}
