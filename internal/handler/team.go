package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mnp/team-roster/internal/domain"
	"github.com/mnp/team-roster/internal/service"
)

// TeamHandler обрабатывает эндпоинты команд
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeamRequest представляет тело запроса на создание команды
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddPlayerRequest представляет тело запроса на добавление игрока.
// Заполняется либо player_id (существующий игрок), либо name и email
// (новый игрок) — комбинировать нельзя.
type AddPlayerRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Create обрабатывает POST /api/team
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	team := &domain.Team{
		Name: req.Name,
	}

	created, err := h.teamService.Create(r.Context(), team)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, created)
}

// Get обрабатывает GET /api/team/{id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	team, err := h.teamService.Get(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, team)
}

// List обрабатывает GET /api/team
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.teamService.ListIDs(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ids)
}

// AddPlayer обрабатывает PUT /api/team/{teamId}/player
func (h *TeamHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")

	var req AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	input := domain.AddPlayerInput{
		ExistingPlayerID: req.PlayerID,
	}
	if req.PlayerID == "" {
		input.NewPlayer = &domain.NewPlayer{
			Name:  req.Name,
			Email: req.Email,
		}
	} else if req.Name != "" || req.Email != "" {
		// Запрос обязан однозначно выбирать между ссылкой и новым игроком
		input.NewPlayer = &domain.NewPlayer{Name: req.Name, Email: req.Email}
	}

	team, err := h.teamService.AddPlayer(r.Context(), teamID, input)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusAccepted, team)
}

// Delete обрабатывает DELETE /api/team/{id}
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.teamService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
