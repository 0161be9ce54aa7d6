package domain

import "time"

// Player представляет игрока лиги
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	TeamID    string    `json:"team_id"`
}

// Validate проверяет обязательные поля игрока
func (p *Player) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if p.Email == "" {
		return &ValidationError{Field: "email"}
	}
	return nil
}

// PlayerUpdate описывает частичное обновление игрока (nil — поле не меняется)
type PlayerUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	TeamID *string `json:"team_id"`
}
