package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "petcare-api/docs"
	mem "petcare-api/internal/adapters/storage/memory"
	"petcare-api/internal/domain/healthmetrics"
	"petcare-api/internal/domain/pets"
	"petcare-api/internal/domain/tasks"
	"petcare-api/internal/domain/users"
	"petcare-api/internal/middleware"
	"petcare-api/internal/platform/logger"
	"petcare-api/internal/ports/documents"
	"petcare-api/internal/ports/objects"
)

type Options struct {
	// Documents es opcional: si no viene, in-memory.
	Documents documents.Store

	// Objects puede ser nil: el alta de mascotas con imagen responde 500.
	Objects objects.Store

	// Media sirve los archivos del store local bajo /media. Opcional.
	Media http.Handler

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Documents
	if store == nil {
		store = mem.NewStore()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if opts.Media != nil {
		r.Handle("/media/*", http.StripPrefix("/media", opts.Media))
	}

	// Repos: una colección por módulo sobre el mismo store
	petRepo := documents.NewCollection(store, pets.CollectionName, func(p pets.Pet) string { return p.ID })
	taskRepo := documents.NewCollection(store, tasks.CollectionName, func(t tasks.Task) string { return t.ID })
	metricRepo := documents.NewCollection(store, healthmetrics.CollectionName, func(m healthmetrics.Metric) string { return m.ID })
	userRepo := documents.NewCollection(store, users.CollectionName, func(u users.User) string { return u.ID })

	// Services por módulo
	petsSvc := pets.NewService(petRepo, opts.Objects)
	tasksSvc := tasks.NewService(taskRepo)
	metricsSvc := healthmetrics.NewService(metricRepo)
	usersSvc := users.NewService(userRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	tasks.RegisterRoutes(r, tasksSvc)
	healthmetrics.RegisterRoutes(r, metricsSvc)
	users.RegisterRoutes(r, usersSvc)

	return r
}
