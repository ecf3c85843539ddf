// Package app arma las dependencias del proceso a partir de la config: store
// documental, object store y router. Se construye una vez al arrancar.
package app

import (
	"context"
	"database/sql"
	"net/http"

	gfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	gcsstore "petcare-api/internal/adapters/objects/gcs"
	localstore "petcare-api/internal/adapters/objects/local"
	s3store "petcare-api/internal/adapters/objects/s3"
	fsstore "petcare-api/internal/adapters/storage/firestore"
	mem "petcare-api/internal/adapters/storage/memory"
	pg "petcare-api/internal/adapters/storage/postgres"
	"petcare-api/internal/config"
	"petcare-api/internal/platform/logger"
	"petcare-api/internal/ports/documents"
	"petcare-api/internal/ports/objects"
	"petcare-api/internal/router"
)

type App struct {
	Config  config.Config
	Logger  logger.Logger
	Handler http.Handler

	Documents documents.Store
	Objects   objects.Store

	db       *sql.DB
	fsClient *gfirestore.Client
	firebase *firebase.App
}

// Build valida la config y conecta los backends elegidos.
func Build(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if log == nil {
		log = logger.Nop()
	}

	a := &App{Config: cfg, Logger: log}

	if cfg.UsesFirebase() {
		fb, err := newFirebase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.firebase = fb
	}

	if err := a.buildDocuments(ctx); err != nil {
		a.Close()
		return nil, err
	}

	media, err := a.buildObjects(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Handler = router.NewRouter(router.Options{
		Documents: a.Documents,
		Objects:   a.Objects,
		Media:     media,
		Logger:    log,
	})

	log.Info("app.ready", map[string]any{
		"documents": cfg.Documents.Driver,
		"objects":   cfg.Objects.Driver,
	})
	return a, nil
}

func newFirebase(ctx context.Context, cfg config.Config) (*firebase.App, error) {
	fbCfg := &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	if cfg.Objects.Driver == config.ObjectsGCS {
		fbCfg.StorageBucket = cfg.Objects.Bucket
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}

	fb, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "init firebase")
	}
	return fb, nil
}

func (a *App) buildDocuments(ctx context.Context) error {
	cfg := a.Config.Documents

	switch cfg.Driver {
	case config.DocumentsPostgres:
		db, err := pg.Open(ctx, cfg.DSN, pg.DefaultOptions())
		if err != nil {
			return err
		}
		a.db = db
		if cfg.Migrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
		}
		a.Documents = pg.NewStore(db)

	case config.DocumentsFirestore:
		client, err := a.firebase.Firestore(ctx)
		if err != nil {
			return errors.Wrap(err, "firestore client")
		}
		a.fsClient = client
		a.Documents = fsstore.NewStore(client)

	default:
		a.Logger.Warn("documents.memory", map[string]any{"note": "datos en memoria, se pierden al reiniciar"})
		a.Documents = mem.NewStore()
	}
	return nil
}

// buildObjects devuelve además el handler de /media cuando el store es local.
func (a *App) buildObjects(ctx context.Context) (http.Handler, error) {
	cfg := a.Config.Objects

	switch cfg.Driver {
	case config.ObjectsLocal:
		s := localstore.New(cfg.LocalDir, cfg.PublicBaseURL)
		a.Objects = s
		return s.Handler(), nil

	case config.ObjectsS3:
		s, err := s3store.New(ctx, s3store.Config{
			Region:        cfg.Region,
			Bucket:        cfg.Bucket,
			Prefix:        cfg.Prefix,
			PublicBaseURL: cfg.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		a.Objects = s

	case config.ObjectsGCS:
		client, err := a.firebase.Storage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "storage client")
		}
		bucket, err := client.Bucket(cfg.Bucket)
		if err != nil {
			return nil, errors.Wrap(err, "storage bucket")
		}
		a.Objects = gcsstore.New(bucket, cfg.Bucket)

	default:
		// Sin object store: las altas con imagen fallan con 500.
		a.Objects = nil
	}
	return nil, nil
}

// Close libera conexiones. Es seguro llamarlo más de una vez.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Logger.Warn("postgres.close", map[string]any{"err": err})
		}
		a.db = nil
	}
	if a.fsClient != nil {
		if err := a.fsClient.Close(); err != nil {
			a.Logger.Warn("firestore.close", map[string]any{"err": err})
		}
		a.fsClient = nil
	}
}

// Migrate aplica las migraciones del store Postgres y cierra la conexión.
func Migrate(ctx context.Context, cfg config.Config, log logger.Logger) error {
	if cfg.Documents.Driver != config.DocumentsPostgres {
		return errors.Errorf("migrate requires documents.driver=postgres (got %q)", cfg.Documents.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	db, err := pg.Open(ctx, cfg.Documents.DSN, pg.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := pg.Migrate(ctx, db); err != nil {
		return err
	}
	if log != nil {
		log.Info("migrate.done", nil)
	}
	return nil
}
