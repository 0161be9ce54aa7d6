package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"

	"github.com/mnp/team-roster/internal/config"
	"github.com/mnp/team-roster/internal/handler"
	"github.com/mnp/team-roster/internal/repository/postgres"
	"github.com/mnp/team-roster/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	server *http.Server
	logger *slog.Logger

	lifecycle *lifecycle

	// bootFn подменяется в тестах жизненного цикла
	bootFn func(ctx context.Context) error
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config:    cfg,
		logger:    logger,
		lifecycle: newLifecycle(),
	}
	app.bootFn = app.boot

	return app, nil
}

// Start запускает приложение. Вызов идемпотентен: если сервер уже поднят,
// возвращается сразу; если запуск уже идет, вызов дожидается его исхода
// вместо повторного подключения и прослушивания.
func (a *App) Start(ctx context.Context) error {
	return a.lifecycle.start(ctx, a.bootFn)
}

// boot подключает БД и поднимает HTTP listener; переход в состояние "up"
// происходит только после того как удались оба шага
func (a *App) boot(ctx context.Context) error {
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.setupServer()

	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		a.db.Close()
		a.db = nil
		return fmt.Errorf("failed to listen on %s: %w", a.server.Addr, err)
	}

	go func() {
		if err := a.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server stopped", "error", err)
		}
	}()

	a.logger.Info("Server up", "addr", a.server.Addr)
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой репозиториев (работа с БД)
	playerRepo := postgres.NewPlayerRepository(a.db)
	teamRepo := postgres.NewTeamRepository(a.db)

	// Инициализируем слой сервисов (бизнес-логика)
	clock := clockwork.NewRealClock()
	playerService := service.NewPlayerService(playerRepo, clock)
	teamService := service.NewTeamService(teamRepo, clock)

	// Инициализируем HTTP обработчики
	playerHandler := handler.NewPlayerHandler(playerService)
	teamHandler := handler.NewTeamHandler(teamService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		// Эндпоинты игроков
		r.Route("/player", func(r chi.Router) {
			r.Post("/", playerHandler.Create)
			r.Get("/", playerHandler.List)
			r.Get("/{id}", playerHandler.Get)
			r.Put("/{id}", playerHandler.Update)
			r.Delete("/{id}", playerHandler.Delete)
		})

		// Эндпоинты команд
		r.Route("/team", func(r chi.Router) {
			r.Post("/", teamHandler.Create)
			r.Get("/", teamHandler.List)
			r.Get("/{id}", teamHandler.Get)
			r.Put("/{teamId}/player", teamHandler.AddPlayer)
			r.Delete("/{id}", teamHandler.Delete)
		})
	})

	// API обслуживает браузерных клиентов напрямую
	corsHandler := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}

	a.lifecycle.reset()

	a.logger.Info("Application stopped gracefully")
	return nil
}
