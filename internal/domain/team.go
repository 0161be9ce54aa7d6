package domain

// Team представляет команду с упорядоченным списком игроков
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"player_ids"`
	// Players заполняется только при чтении команды по id (развернутые записи)
	Players []Player `json:"players,omitempty"`
}

// Validate проверяет обязательные поля команды
func (t *Team) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name"}
	}
	return nil
}

// AddPlayerInput — явная форма запроса на добавление игрока в команду.
// Заполняется ровно одно из двух полей: ссылка на существующего игрока
// или данные нового.
type AddPlayerInput struct {
	ExistingPlayerID string
	NewPlayer        *NewPlayer
}

// NewPlayer содержит данные игрока, создаваемого внутри воркфлоу добавления
type NewPlayer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate проверяет что форма запроса однозначна
func (in AddPlayerInput) Validate() error {
	if in.ExistingPlayerID != "" && in.NewPlayer != nil {
		return &ValidationError{Message: "player_id cannot be combined with a new player payload"}
	}
	if in.ExistingPlayerID == "" && in.NewPlayer == nil {
		return &ValidationError{Message: "either player_id or a new player payload is required"}
	}
	return nil
}
