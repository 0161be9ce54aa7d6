package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnp/team-roster/internal/domain"
)

// fakeTeamRepo записывает вызовы вместо обращения к БД
type fakeTeamRepo struct {
	teams map[string]*domain.Team

	linkedNewPlayer      *domain.Player
	linkedExistingID     string
	linkNewCalls         int
	linkExistingCalls    int
	createdTeam          *domain.Team
	deletedID            string
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[string]*domain.Team)}
}

func (f *fakeTeamRepo) Create(_ context.Context, team *domain.Team) error {
	team.ID = "team-1"
	f.createdTeam = team
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (*domain.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "team", ID: id}
	}
	return team, nil
}

func (f *fakeTeamRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.teams[id]
	return ok, nil
}

func (f *fakeTeamRepo) ListIDs(_ context.Context) ([]string, error) {
	ids := []string{}
	for id := range f.teams {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.teams[id]; !ok {
		return &domain.NotFoundError{Resource: "team", ID: id}
	}
	f.deletedID = id
	delete(f.teams, id)
	return nil
}

func (f *fakeTeamRepo) LinkNewPlayer(_ context.Context, teamID string, player *domain.Player) (*domain.Team, error) {
	f.linkNewCalls++
	team, ok := f.teams[teamID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "team", ID: teamID}
	}
	player.ID = "player-new"
	f.linkedNewPlayer = player
	team.PlayerIDs = append(team.PlayerIDs, player.ID)
	return team, nil
}

func (f *fakeTeamRepo) LinkExistingPlayer(_ context.Context, teamID, playerID string) (*domain.Team, error) {
	f.linkExistingCalls++
	team, ok := f.teams[teamID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "team", ID: teamID}
	}
	f.linkedExistingID = playerID
	team.PlayerIDs = append(team.PlayerIDs, playerID)
	return team, nil
}

func TestTeamServiceCreate(t *testing.T) {
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	created, err := svc.Create(context.Background(), &domain.Team{Name: "The Best Team"})
	require.NoError(t, err)
	assert.Equal(t, "team-1", created.ID)
	assert.Equal(t, "The Best Team", repo.createdTeam.Name)
}

func TestTeamServiceCreateMissingName(t *testing.T) {
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	_, err := svc.Create(context.Background(), &domain.Team{})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Nil(t, repo.createdTeam)
}

func TestTeamServiceAddNewPlayer(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.teams["team-1"] = &domain.Team{ID: "team-1", Name: "The Best Team"}

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	svc := NewTeamService(repo, clock)

	input := domain.AddPlayerInput{
		NewPlayer: &domain.NewPlayer{Name: "Joe Player", Email: "joe@foo.bar"},
	}

	team, err := svc.AddPlayer(context.Background(), "team-1", input)
	require.NoError(t, err)

	// Игрок ушел в репозиторий с привязкой к команде и временем от часов сервиса
	require.NotNil(t, repo.linkedNewPlayer)
	assert.Equal(t, "team-1", repo.linkedNewPlayer.TeamID)
	assert.Equal(t, now, repo.linkedNewPlayer.CreatedAt)
	assert.Equal(t, []string{"player-new"}, team.PlayerIDs)
}

func TestTeamServiceAddExistingPlayer(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.teams["team-1"] = &domain.Team{ID: "team-1", Name: "The Best Team", PlayerIDs: []string{"player-7"}}
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	input := domain.AddPlayerInput{ExistingPlayerID: "player-7"}

	team, err := svc.AddPlayer(context.Background(), "team-1", input)
	require.NoError(t, err)

	assert.Equal(t, "player-7", repo.linkedExistingID)
	assert.Zero(t, repo.linkNewCalls, "existing player must not trigger a create")
	// Дубликаты в списке допустимы
	assert.Equal(t, []string{"player-7", "player-7"}, team.PlayerIDs)
}

func TestTeamServiceAddPlayerUnknownTeam(t *testing.T) {
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	input := domain.AddPlayerInput{
		NewPlayer: &domain.NewPlayer{Name: "Joe Player", Email: "joe@foo.bar"},
	}

	_, err := svc.AddPlayer(context.Background(), "unknown", input)

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "team", notFoundErr.Resource)
}

func TestTeamServiceAddPlayerUnknownTeamInvalidPayload(t *testing.T) {
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	// Разрешение команды идет первым: для неизвестной команды возвращается
	// not found даже когда само тело запроса невалидно
	input := domain.AddPlayerInput{NewPlayer: &domain.NewPlayer{}}

	_, err := svc.AddPlayer(context.Background(), "unknown", input)

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "team", notFoundErr.Resource)

	_, err = svc.AddPlayer(context.Background(), "unknown", domain.AddPlayerInput{})
	require.ErrorAs(t, err, &notFoundErr)
}

func TestTeamServiceAddPlayerInvalidPayload(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.teams["team-1"] = &domain.Team{ID: "team-1", Name: "The Best Team"}
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	input := domain.AddPlayerInput{
		NewPlayer: &domain.NewPlayer{Email: "joe@foo.bar"},
	}

	_, err := svc.AddPlayer(context.Background(), "team-1", input)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	// Невалидный запрос не должен дойти до репозитория
	assert.Zero(t, repo.linkNewCalls)
	assert.Empty(t, repo.teams["team-1"].PlayerIDs)
}

func TestTeamServiceAddPlayerAmbiguousInput(t *testing.T) {
	repo := newFakeTeamRepo()
	repo.teams["team-1"] = &domain.Team{ID: "team-1", Name: "The Best Team"}
	svc := NewTeamService(repo, clockwork.NewFakeClock())

	input := domain.AddPlayerInput{
		ExistingPlayerID: "player-7",
		NewPlayer:        &domain.NewPlayer{Name: "Joe Player", Email: "joe@foo.bar"},
	}

	_, err := svc.AddPlayer(context.Background(), "team-1", input)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, repo.linkNewCalls)
	assert.Zero(t, repo.linkExistingCalls)
}
