package app

import (
	"context"
	"log/slog"

	"github.com/udi/talleres-api/internal/domain"
)

type WorkshopRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListWorkshops(ctx context.Context) ([]domain.Workshop, error)
	GetWorkshop(ctx context.Context, id string) (domain.Workshop, error)
	CreateWorkshop(ctx context.Context, w domain.Workshop) error
	ReplaceWorkshop(ctx context.Context, w domain.Workshop) error
	DeleteWorkshop(ctx context.Context, id string) error
}

type WorkshopService struct {
	repo   WorkshopRepository
	newID  IDGenerator
	logger *slog.Logger
}

func NewWorkshopService(repo WorkshopRepository, opts ...Option) *WorkshopService {
	o := applyOptions(opts)
	return &WorkshopService{
		repo:   repo,
		newID:  o.newID,
		logger: o.logger,
	}
}

func (s *WorkshopService) ListWorkshops(ctx context.Context) ([]domain.Workshop, error) {
	return s.repo.ListWorkshops(ctx)
}

func (s *WorkshopService) GetWorkshop(ctx context.Context, id string) (domain.Workshop, error) {
	return s.repo.GetWorkshop(ctx, id)
}

func (s *WorkshopService) CreateWorkshop(ctx context.Context, in domain.WorkshopPatch) (domain.Workshop, error) {
	candidate := in.Apply(domain.Workshop{})
	if err := candidate.Validate(); err != nil {
		return domain.Workshop{}, err
	}

	w := candidate.Workshop
	w.ID = s.newID()
	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.CreateWorkshop(txCtx, w)
	}); err != nil {
		return domain.Workshop{}, err
	}

	s.logger.InfoContext(ctx, "workshop created", "id", w.ID, "titulo", w.Titulo)
	return w, nil
}

// UpdateWorkshop merges the present fields of in over the stored record and
// validates the result as a whole before replacing it.
func (s *WorkshopService) UpdateWorkshop(ctx context.Context, id string, in domain.WorkshopPatch) (domain.Workshop, error) {
	var result domain.Workshop
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetWorkshop(txCtx, id)
		if err != nil {
			return err
		}

		candidate := in.Apply(existing)
		if err := candidate.Validate(); err != nil {
			return err
		}

		result = candidate.Workshop
		return s.repo.ReplaceWorkshop(txCtx, result)
	})
	if err != nil {
		return domain.Workshop{}, err
	}

	s.logger.InfoContext(ctx, "workshop updated", "id", id)
	return result, nil
}

// DeleteWorkshop removes the workshop. Participants still referencing it are
// left in place.
func (s *WorkshopService) DeleteWorkshop(ctx context.Context, id string) error {
	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteWorkshop(txCtx, id)
	}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "workshop deleted", "id", id)
	return nil
}
