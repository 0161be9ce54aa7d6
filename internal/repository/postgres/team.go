package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mnp/team-roster/internal/domain"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create сохраняет новую команду и присваивает ей идентификатор
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `INSERT INTO teams (id, name, player_ids) VALUES ($1, $2, $3)`

	team.ID = uuid.NewString()
	if team.PlayerIDs == nil {
		team.PlayerIDs = []string{}
	}

	_, err := r.db.Exec(ctx, query, team.ID, team.Name, team.PlayerIDs)
	return err
}

// GetByID получает команду с развернутыми записями игроков
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT id, name, player_ids FROM teams WHERE id = $1`

	var team domain.Team
	err := r.db.QueryRow(ctx, query, id).Scan(&team.ID, &team.Name, &team.PlayerIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "team", ID: id}
		}
		return nil, err
	}

	if len(team.PlayerIDs) == 0 {
		return &team, nil
	}

	players, err := r.playersByIDs(ctx, team.PlayerIDs)
	if err != nil {
		return nil, err
	}

	// Разворачиваем список в порядке player_ids; висячие ссылки на
	// удаленных игроков пропускаются
	team.Players = make([]domain.Player, 0, len(team.PlayerIDs))
	for _, playerID := range team.PlayerIDs {
		if player, ok := players[playerID]; ok {
			team.Players = append(team.Players, player)
		}
	}

	return &team, nil
}

// playersByIDs загружает игроков по списку идентификаторов
func (r *TeamRepository) playersByIDs(ctx context.Context, ids []string) (map[string]domain.Player, error) {
	query := `
		SELECT id, name, email, created_at, team_id
		FROM players
		WHERE id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make(map[string]domain.Player)
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(&player.ID, &player.Name, &player.Email, &player.CreatedAt, &player.TeamID); err != nil {
			return nil, err
		}
		players[player.ID] = player
	}

	return players, rows.Err()
}

// Exists проверяет существование команды
func (r *TeamRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// ListIDs возвращает идентификаторы всех команд
func (r *TeamRepository) ListIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM teams ORDER BY name`

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

// Delete удаляет команду по ID (записи игроков не трогаем)
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "team", ID: id}
	}

	return nil
}

// LinkNewPlayer в одной транзакции создает игрока и добавляет его
// идентификатор в список команды
func (r *TeamRepository) LinkNewPlayer(ctx context.Context, teamID string, player *domain.Player) (*domain.Team, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO players (id, name, email, created_at, team_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	player.ID = uuid.NewString()
	if _, err := tx.Exec(ctx, insertQuery,
		player.ID, player.Name, player.Email, player.CreatedAt, player.TeamID); err != nil {
		return nil, err
	}

	if err := appendPlayerID(ctx, tx, team, player.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return team, nil
}

// LinkExistingPlayer в одной транзакции переводит игрока в команду и
// добавляет его идентификатор в список команды
func (r *TeamRepository) LinkExistingPlayer(ctx context.Context, teamID, playerID string) (*domain.Team, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	team, err := lockTeam(ctx, tx, teamID)
	if err != nil {
		return nil, err
	}

	updateQuery := `UPDATE players SET team_id = $1 WHERE id = $2`

	result, err := tx.Exec(ctx, updateQuery, teamID, playerID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, &domain.NotFoundError{Resource: "player", ID: playerID}
	}

	if err := appendPlayerID(ctx, tx, team, playerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return team, nil
}

// lockTeam читает команду под блокировкой строки на время транзакции
func lockTeam(ctx context.Context, tx pgx.Tx, teamID string) (*domain.Team, error) {
	query := `SELECT id, name, player_ids FROM teams WHERE id = $1 FOR UPDATE`

	var team domain.Team
	err := tx.QueryRow(ctx, query, teamID).Scan(&team.ID, &team.Name, &team.PlayerIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "team", ID: teamID}
		}
		return nil, err
	}

	return &team, nil
}

// appendPlayerID дописывает идентификатор в конец player_ids без дедупликации
func appendPlayerID(ctx context.Context, tx pgx.Tx, team *domain.Team, playerID string) error {
	query := `
		UPDATE teams
		SET player_ids = array_append(player_ids, $2)
		WHERE id = $1
		RETURNING player_ids
	`

	return tx.QueryRow(ctx, query, team.ID, playerID).Scan(&team.PlayerIDs)
}
