package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/morisolt/facetkit/internal"
	"github.com/morisolt/facetkit/internal/engine"
	"github.com/morisolt/facetkit/internal/server"
)

func main() {

	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	logger := internal.NewLogger(config)
	slog.SetDefault(logger)

	searcher, err := newSearcher(config)
	if err != nil {
		log.Fatal("Failed to initialize search engine: ", err)
	}

	e, err := server.InitServer(config, searcher)
	if err != nil {
		log.Fatal("Failed to initialize server: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := e.Start(config.EchoAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

func newSearcher(config *internal.Config) (engine.Searcher, error) {
	if config.EngineMode == "remote" {
		return engine.NewRemoteEngine(config), nil
	}
	items, err := engine.LoadDemoItems()
	if err != nil {
		return nil, err
	}
	return engine.NewIndex(items), nil
}
