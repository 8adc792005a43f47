package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/jadegt/joyeria-manager/config"
	httpapi "github.com/jadegt/joyeria-manager/internal/api/http"
	"github.com/jadegt/joyeria-manager/internal/cache"
	"github.com/jadegt/joyeria-manager/internal/dependency"
	"github.com/jadegt/joyeria-manager/internal/report"
	"github.com/jadegt/joyeria-manager/internal/source/supabase"
	"github.com/jadegt/joyeria-manager/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	src  dependency.TableSource
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting joyeria manager",
		slog.String("source", a.c.Source),
	)

	switch a.c.Source {
	case "supabase":
		a.src = supabase.New(&a.c.Supabase)
	case "mysql", "":
		a.src, err = store.New(ctx, a.c.DB)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
				slog.String("err", err.Error()),
			)
			return err
		}
	default:
		return fmt.Errorf("unknown table source %q", a.c.Source)
	}

	svc := report.New(a.c.Report, a.src)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, svc, cache.NewDashboard())
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		close(a.done)
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		a.hs.Stop(ctx)
	}
	if a.src != nil {
		a.src.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
