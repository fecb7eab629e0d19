package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/angelofallars/dpm/internal/category"
	"github.com/angelofallars/dpm/internal/employee"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/dpm/internal/work"
	"github.com/go-chi/chi/v5"
)

// Services are the domain services the handlers are built on.
type Services struct {
	Todos      *todo.Service
	Work       *work.Service
	Categories *category.Service
	Employees  *employee.Directory
	PageSize   int
}

type App struct {
	host string
	port int

	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration

	slog   *slog.Logger
	router chi.Router

	svc Services
}

func New(slog *slog.Logger, svc Services) *App {
	app := &App{
		host: "localhost",
		port: 3000,

		readTimeout:  10 * time.Second,
		writeTimeout: 30 * time.Second,
		idleTimeout:  time.Minute,

		router: chi.NewRouter(),
		slog:   slog,

		svc: svc,
	}

	app.RegisterRoutes()

	return app
}

func (a *App) WithHost(host string) *App {
	a.host = host
	return a
}

func (a *App) WithPort(port uint) *App {
	a.port = int(port)
	return a
}

// WithTimeouts overrides the server timeouts. Zero values keep the
// defaults.
func (a *App) WithTimeouts(read, write, idle time.Duration) *App {
	if read > 0 {
		a.readTimeout = read
	}
	if write > 0 {
		a.writeTimeout = write
	}
	if idle > 0 {
		a.idleTimeout = idle
	}
	return a
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler { return a.router }

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.host, a.port)
	server := http.Server{
		Addr:    addr,
		Handler: a.router,

		IdleTimeout:  a.idleTimeout,
		ReadTimeout:  a.readTimeout,
		WriteTimeout: a.writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		a.slog.Info("server started listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	a.slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.writeTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
