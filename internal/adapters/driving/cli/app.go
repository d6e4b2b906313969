package cli

import (
	"context"
	"fmt"

	driveapi "google.golang.org/api/drive/v3"

	artifactfile "github.com/nimbus-labs/driveingest/internal/adapters/driven/artifact/file"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/auth"
	cfgfile "github.com/nimbus-labs/driveingest/internal/adapters/driven/config/file"
	cursorfile "github.com/nimbus-labs/driveingest/internal/adapters/driven/cursor/file"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/embedding"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/storage"
	"github.com/nimbus-labs/driveingest/internal/adapters/driven/storage/sqlite"
	"github.com/nimbus-labs/driveingest/internal/connectors/google"
	gdrive "github.com/nimbus-labs/driveingest/internal/connectors/google/drive"
	"github.com/nimbus-labs/driveingest/internal/core/ports/driven"
	"github.com/nimbus-labs/driveingest/internal/core/services"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// driveApp holds the wiring the Drive-only commands need.
type driveApp struct {
	cfg    *cfgfile.Config
	client *gdrive.Client
	cursor *cursorfile.Store
}

// newDriveApp loads configuration, authenticates against Drive and opens
// the cursor store. Auth failure here is fatal; nothing can proceed
// without a session.
func newDriveApp(ctx context.Context) (*driveApp, error) {
	cfg, err := cfgfile.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	provider, err := auth.NewFileTokenProvider(ctx, cfg.CredentialsPath, cfg.TokenPath, driveapi.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	svc, err := google.NewDriveService(ctx, google.NewTokenSource(ctx, provider))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	cursor, err := cursorfile.NewStore(cfg.CursorPath)
	if err != nil {
		return nil, fmt.Errorf("open cursor store: %w", err)
	}

	return &driveApp{
		cfg:    cfg,
		client: gdrive.NewClient(svc),
		cursor: cursor,
	}, nil
}

// serveApp is the full wiring behind the serve command.
type serveApp struct {
	*driveApp
	embedder    driven.EmbeddingService
	store       driven.VectorStore
	deadLetters *sqlite.DeadLetterStore
	ingestor    *services.Ingestor
}

// newServeApp wires the entire pipeline and pings the remote
// collaborators so credential problems surface before the first
// notification arrives.
func newServeApp(ctx context.Context) (*serveApp, error) {
	base, err := newDriveApp(ctx)
	if err != nil {
		return nil, err
	}
	cfg := base.cfg

	embedder, err := embedding.New(cfg.Embedding)
	if err != nil {
		return nil, err
	}
	if err := embedder.Ping(ctx); err != nil {
		return nil, fmt.Errorf("embedding service unreachable: %w", err)
	}

	store, err := storage.New(cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("vector store unreachable: %w", err)
	}

	deadLetters, err := sqlite.NewDeadLetterStore(cfg.DeadLetter.Path)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter store: %w", err)
	}

	var artifacts driven.ArtifactStore
	if cfg.Artifacts.Enabled {
		s, err := artifactfile.NewStore(cfg.Artifacts.Dir)
		if err != nil {
			return nil, fmt.Errorf("open artifact store: %w", err)
		}
		artifacts = s
	}

	ingestor := services.NewIngestor(services.Deps{
		Cursor:        base.cursor,
		Resolver:      base.client,
		Membership:    base.client,
		Extractor:     base.client,
		Describer:     base.client,
		Embedder:      embedder,
		Store:         store,
		DeadLetters:   deadLetters,
		Artifacts:     artifacts,
		WatchFolderID: cfg.WatchFolderID,
		OwnerName:     cfg.Identity.Name,
		OwnerEmail:    cfg.Identity.Email,
	})

	return &serveApp{
		driveApp:    base,
		embedder:    embedder,
		store:       store,
		deadLetters: deadLetters,
		ingestor:    ingestor,
	}, nil
}

func (a *serveApp) close() {
	if err := a.embedder.Close(); err != nil {
		logger.Warn("Closing embedding service: %v", err)
	}
	if err := a.store.Close(); err != nil {
		logger.Warn("Closing vector store: %v", err)
	}
	if err := a.deadLetters.Close(); err != nil {
		logger.Warn("Closing dead-letter store: %v", err)
	}
}
