package catalog

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/config"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
)

func newDb() context.Context {
	config.TestInit()
	db.Init()
	ctx := log.Logger.WithContext(context.Background())
	ctx, err := db.ConnCtx(ctx)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("unable to get db connection")
	}
	return ctx
}
