package router

import (
	"net/http"

	mem "pet-clinic-types/internal/adapters/storage/memory"
	"pet-clinic-types/internal/adapters/storage/sqldb"
	"pet-clinic-types/internal/domain/pettypes"
	"pet-clinic-types/internal/middleware"
	"pet-clinic-types/internal/platform/logger"
	"pet-clinic-types/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Prioridad: PetTypes explícito > DB (postgres/sqlite) > in-memory.
	PetTypes pettypes.Repository
	DB       *sqlx.DB

	Logger logger.Logger // nil => Nop
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repo := opts.PetTypes
	switch {
	case repo != nil:
	case opts.DB != nil:
		repo = sqldb.NewPetTypeRepoFromDB(opts.DB)
	default:
		repo = mem.NewPetTypeRepo()
	}

	pettypes.RegisterRoutes(r, pettypes.NewService(repo, log))

	return r
}
