package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wellnest/wellnest-server/internal/config"
	storepkg "github.com/wellnest/wellnest-server/internal/store"
	storemongo "github.com/wellnest/wellnest-server/internal/store/mongo"
)

// NewStore returns a Mongo-backed store.Store together with a close function
// that releases the underlying client.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (storepkg.Store, func(context.Context) error, error) {
	if cfg.MongoURI == "" {
		return nil, nil, fmt.Errorf("WELLNEST_MONGO_URI is required")
	}

	// Connect synchronously since the ping probes need the client immediately.
	client, err := storemongo.Open(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}

	st, err := storemongo.New(ctx, client.Database(cfg.MongoDatabase))
	if err != nil {
		_ = client.Disconnect(ctx) //nolint:errcheck
		return nil, nil, err
	}

	log.Info().Str("database", cfg.MongoDatabase).Msg("store initialized")
	return st, client.Disconnect, nil
}
