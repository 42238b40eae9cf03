package pettypes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"pet-clinic-types/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pettypes", func(pr chi.Router) {
		// Lectura pública
		pr.Get("/", listPetTypesHandler(svc))
		pr.Get("/{typeID}", getPetTypeHandler(svc))

		// Mutaciones: requieren claims con rol AdminRole
		pr.Post("/", createPetTypeHandler(svc))
		pr.Put("/{typeID}", updatePetTypeHandler(svc))
		pr.Delete("/{typeID}", deletePetTypeHandler(svc))
	})
}

type petTypeRequest struct {
	Name string `json:"name"`
}

type petTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// ?name= filtra por nombre exacto (findByName)
		if name := r.URL.Query().Get("name"); strings.TrimSpace(name) != "" {
			t, err := svc.FindByName(r.Context(), name)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, []petTypeResponse{toPetTypeResponse(t)})
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]petTypeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toPetTypeResponse(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := typeIDParam(w, r)
		if !ok {
			return
		}

		t, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetTypeResponse(t))
	}
}

func createPetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req petTypeRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetTypeResponse(t))
	}
}

func updatePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}
		id, ok := typeIDParam(w, r)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req petTypeRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Rename(r.Context(), id, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetTypeResponse(t))
	}
}

func deletePetTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}
		id, ok := typeIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// AdminRole es el rol que habilita crear, renombrar y borrar tipos.
const AdminRole = "VET_ADMIN"

// requireAdmin: 401 sin claims, 403 si faltan permisos.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if !claims.HasRole(AdminRole) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func typeIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "typeID"))
	if err != nil {
		http.Error(w, "typeID must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet type not found", http.StatusNotFound)
	case errors.Is(err, ErrInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetTypeResponse(t PetType) petTypeResponse {
	id, _ := t.ID()
	return petTypeResponse{ID: id, Name: t.Name}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
