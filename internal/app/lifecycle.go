package app

import (
	"context"
	"sync"
)

// bootState описывает состояние жизненного цикла приложения
type bootState int

const (
	stateDown bootState = iota
	stateBooting
	stateUp
)

// lifecycle сериализует запуск приложения: первый вызов start выполняет
// загрузку, конкурентные вызовы разделяют исход уже идущей загрузки,
// вызовы после успешного запуска возвращаются сразу. После неудачной
// загрузки состояние откатывается в down и следующий вызов пробует снова.
type lifecycle struct {
	mu       sync.Mutex
	state    bootState
	bootDone chan struct{}
	bootErr  error
}

func newLifecycle() *lifecycle {
	return &lifecycle{state: stateDown}
}

func (l *lifecycle) start(ctx context.Context, boot func(ctx context.Context) error) error {
	l.mu.Lock()
	switch l.state {
	case stateUp:
		l.mu.Unlock()
		return nil
	case stateBooting:
		done := l.bootDone
		l.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		l.mu.Lock()
		err := l.bootErr
		l.mu.Unlock()
		return err
	}

	l.state = stateBooting
	done := make(chan struct{})
	l.bootDone = done
	l.mu.Unlock()

	err := boot(ctx)

	l.mu.Lock()
	l.bootErr = err
	if err != nil {
		l.state = stateDown
	} else {
		l.state = stateUp
	}
	close(done)
	l.mu.Unlock()

	return err
}

// reset возвращает жизненный цикл в состояние down после остановки
func (l *lifecycle) reset() {
	l.mu.Lock()
	l.state = stateDown
	l.bootDone = nil
	l.bootErr = nil
	l.mu.Unlock()
}
