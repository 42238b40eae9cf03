package pettypes

import (
	"context"

	"pet-clinic-types/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "pettypes"}),
	}
}

func (s *Service) List(ctx context.Context) ([]PetType, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (PetType, error) {
	if id <= 0 {
		return PetType{}, NewNotFoundError(Kind, id)
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (PetType, error) {
	name = normalizeName(name)
	if name == "" {
		return PetType{}, ErrInvalidInput
	}
	return s.repo.FindByName(ctx, name)
}

func (s *Service) Create(ctx context.Context, name string) (PetType, error) {
	name = normalizeName(name)
	if name == "" {
		return PetType{}, ErrInvalidInput
	}

	t := New(name)
	if err := s.repo.Save(ctx, &t); err != nil {
		s.log.Error("create pet type failed", map[string]any{"name": name, "error": err.Error()})
		return PetType{}, err
	}

	id, _ := t.ID()
	s.log.Info("pet type created", map[string]any{"id": id, "name": name})
	return t, nil
}

// Rename carga el tipo antes de guardar: el repo no valida filas afectadas en el update.
func (s *Service) Rename(ctx context.Context, id int, name string) (PetType, error) {
	name = normalizeName(name)
	if name == "" {
		return PetType{}, ErrInvalidInput
	}

	t, err := s.Get(ctx, id)
	if err != nil {
		return PetType{}, err
	}
	if t.Name == name {
		return t, nil
	}

	t.Name = name
	if err := s.repo.Save(ctx, &t); err != nil {
		s.log.Error("rename pet type failed", map[string]any{"id": id, "error": err.Error()})
		return PetType{}, err
	}

	s.log.Info("pet type renamed", map[string]any{"id": id, "name": name})
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, t); err != nil {
		s.log.Warn("delete pet type rejected", map[string]any{"id": id, "error": err.Error()})
		return err
	}

	s.log.Info("pet type deleted", map[string]any{"id": id})
	return nil
}
