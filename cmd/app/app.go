package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/config"
	"github.com/usv-events/client-go/internal/gateway"
	"github.com/usv-events/client-go/internal/logger"
	"github.com/usv-events/client-go/internal/session"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.Gateway.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if baseURL := os.Getenv("USV_API_BASE_URL"); baseURL != "" {
		conf.API.BaseURL = baseURL
	}

	store, err := session.NewStore(conf.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize session storage -> %w", err)
	}

	sessions := session.NewManager(store)
	api := client.New(conf.API.BaseURL, sessions)
	sessions.SetAuth(api.Auth())

	// Bootstrap restores the cached session immediately and verifies it
	// in the background; the gateway starts without waiting for the
	// remote API to answer.
	ctx := context.Background()
	sessions.Bootstrap(ctx)

	if err = sessions.WatchExternal(ctx); err != nil {
		zap.L().Warn("session file watcher unavailable", zap.Error(err))
	}

	s := gateway.NewServer(conf, api, sessions, store)

	addr := ":" + s.Config.Gateway.Port
	zap.L().Info(fmt.Sprintf("starting gateway at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the gateway -> %w", err)
	}

	return nil
}
