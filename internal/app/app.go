package app

import (
	"crypto/ecdh"
	"os"

	"github.com/rs/zerolog"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	identitysvc "sealchat/internal/services/identity"
	sessionsvc "sealchat/internal/services/session"
	"sealchat/internal/store"
)

// App bundles the configured services for the CLI.
type App struct {
	Cfg      Config
	Log      zerolog.Logger
	Curve    ecdh.Curve
	Store    domain.IdentityStore
	Identity *identitysvc.Service
	Sessions *sessionsvc.Service
}

// New builds the dependency graph from cfg. The home directory must exist.
func New(cfg Config) (*App, error) {
	curve, err := crypto.CurveByName(cfg.Curve)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	fileStore := store.NewFileStore(cfg.Home)

	return &App{
		Cfg:      cfg,
		Log:      log,
		Curve:    curve,
		Store:    fileStore,
		Identity: identitysvc.New(curve, fileStore),
		Sessions: sessionsvc.New(),
	}, nil
}
