package domain

import "fmt"

// ValidationError возвращается когда обязательное поле отсутствует или
// запрос составлен некорректно
type ValidationError struct {
	Field   string // имя отсутствующего поля
	Message string // произвольное описание, если дело не в одном поле
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// NotFoundError возвращается когда идентификатор не находит запись
type NotFoundError struct {
	Resource string // "player" или "team"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
