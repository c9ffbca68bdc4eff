package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapblocks/snapblocks/internal/server"
	"github.com/snapblocks/snapblocks/pkg/cache"
	"github.com/snapblocks/snapblocks/pkg/config"
	"github.com/snapblocks/snapblocks/pkg/store"
)

// serveCommand creates the HTTP API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var configRef string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the block rendering HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configRef)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configRef, "config", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	st, err := newStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	artifactCache, err := newServerCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer artifactCache.Close()

	c.Logger.Info("starting server",
		"addr", cfg.Server.Addr,
		"store", cfg.Store.Backend,
		"cache", cfg.Cache.Backend,
	)
	return server.New(cfg, st, artifactCache, c.Logger).Start(ctx)
}

// newStore builds the definition store from configuration.
func newStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}

// newServerCache builds the artifact cache from configuration.
func newServerCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "file":
		return cache.NewFileCache(cfg.Dir)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
