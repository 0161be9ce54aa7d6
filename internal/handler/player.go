package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mnp/team-roster/internal/domain"
	"github.com/mnp/team-roster/internal/service"
)

// PlayerHandler обрабатывает эндпоинты игроков
type PlayerHandler struct {
	playerService *service.PlayerService
}

// NewPlayerHandler создает новый PlayerHandler
func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayerRequest представляет тело запроса на создание игрока
type CreatePlayerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateAckResponse представляет подтверждение частичного обновления
type UpdateAckResponse struct {
	Modified int64 `json:"modified"`
}

// Create обрабатывает POST /api/player
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	player := &domain.Player{
		Name:  req.Name,
		Email: req.Email,
	}

	created, err := h.playerService.Create(r.Context(), player)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, created)
}

// Get обрабатывает GET /api/player/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, player)
}

// List обрабатывает GET /api/player
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.playerService.ListIDs(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ids)
}

// Update обрабатывает PUT /api/player/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var upd domain.PlayerUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	// Ответ содержит только число измененных записей, само состояние
	// клиент перечитывает отдельным GET
	modified, err := h.playerService.Update(r.Context(), id, upd)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusAccepted, UpdateAckResponse{Modified: modified})
}

// Delete обрабатывает DELETE /api/player/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
