package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mnp/team-roster/internal/domain"
)

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Message: message})
}

// HandleError преобразует доменные ошибки в HTTP ответы. Единственное
// место где таксономия ошибок отображается на статус коды.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		RespondWithError(w, r, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		RespondWithError(w, r, http.StatusNotFound, notFoundErr.Error())
	default:
		RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
