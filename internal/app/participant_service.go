package app

import (
	"context"
	"log/slog"

	"github.com/udi/talleres-api/internal/domain"
)

type ParticipantRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	GetParticipant(ctx context.Context, id string) (domain.Participant, error)
	FindParticipantByEmail(ctx context.Context, email string) (*domain.Participant, error)
	WorkshopExists(ctx context.Context, id string) (bool, error)
	CreateParticipant(ctx context.Context, p domain.Participant) error
	ReplaceParticipant(ctx context.Context, p domain.Participant) error
	DeleteParticipant(ctx context.Context, id string) error
}

type ParticipantService struct {
	repo   ParticipantRepository
	newID  IDGenerator
	logger *slog.Logger
}

func NewParticipantService(repo ParticipantRepository, opts ...Option) *ParticipantService {
	o := applyOptions(opts)
	return &ParticipantService{
		repo:   repo,
		newID:  o.newID,
		logger: o.logger,
	}
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	return s.repo.ListParticipants(ctx)
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id string) (domain.Participant, error) {
	return s.repo.GetParticipant(ctx, id)
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, in domain.ParticipantPatch) (domain.Participant, error) {
	var result domain.Participant
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		candidate := in.Apply(domain.Participant{})
		if err := s.validate(txCtx, candidate, true); err != nil {
			return err
		}

		result = candidate.Participant
		result.ID = s.newID()
		return s.repo.CreateParticipant(txCtx, result)
	})
	if err != nil {
		return domain.Participant{}, err
	}

	s.logger.InfoContext(ctx, "participant created", "id", result.ID, "taller_id", result.TallerID)
	return result, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, id string, in domain.ParticipantPatch) (domain.Participant, error) {
	var result domain.Participant
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetParticipant(txCtx, id)
		if err != nil {
			return err
		}

		candidate := in.Apply(existing)
		if err := s.validate(txCtx, candidate, false); err != nil {
			return err
		}

		result = candidate.Participant
		return s.repo.ReplaceParticipant(txCtx, result)
	})
	if err != nil {
		return domain.Participant{}, err
	}

	s.logger.InfoContext(ctx, "participant updated", "id", id)
	return result, nil
}

func (s *ParticipantService) DeleteParticipant(ctx context.Context, id string) error {
	if err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteParticipant(txCtx, id)
	}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "participant deleted", "id", id)
	return nil
}

// validate applies the participant rules in order. On create any participant
// already holding the email conflicts; on update only a different one does.
func (s *ParticipantService) validate(ctx context.Context, c domain.ParticipantCandidate, isNew bool) error {
	if err := c.ValidateContact(); err != nil {
		return err
	}

	holder, err := s.repo.FindParticipantByEmail(ctx, c.Email)
	if err != nil {
		return err
	}
	if holder != nil && (isNew || holder.ID != c.ID) {
		return domain.ErrEmailTaken
	}

	if err := c.ValidateReference(); err != nil {
		return err
	}
	exists, err := s.repo.WorkshopExists(ctx, c.TallerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrWorkshopRefMissing
	}
	return nil
}
