package provider

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"easyappointment/models"
	"easyappointment/services/schedule"
	"easyappointment/utils"
)

// CreateProvider validates and persists a provider, then dispatches
// schedule generation to the background worker. The response returns as
// soon as the provider document is written; slots appear shortly after.
func (s *DefaultProviderService) CreateProvider(ctx context.Context, branchID string, req models.CreateProviderRequest) (*models.Provider, error) {
	logger := utils.GetLogger()

	branch, err := s.Branches.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, utils.NotFoundf("branch %s not found", branchID)
	}

	prov := &models.Provider{
		ID:              uuid.New().String(),
		Name:            req.Name,
		BranchID:        branchID,
		WorkingDays:     req.WorkingDays,
		SessionDuration: req.SessionDuration,
		Breaks:          req.Breaks,
	}

	if !prov.HasWorkingDay() {
		return nil, utils.Validationf("provider must have at least one working day")
	}
	if prov.SessionDuration <= 0 {
		return nil, utils.Validationf("session duration must be positive, got %d", prov.SessionDuration)
	}
	// Malformed breaks must fail the request here; the background worker
	// would otherwise reject them on every retry with no client-visible error.
	if err := schedule.ValidateBreaks(prov.Breaks); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByNameAndBranch(req.Name, branchID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.Conflictf("provider %q already exists in branch %s", req.Name, branchID)
	}

	if err := s.Repo.Create(prov); err != nil {
		return nil, err
	}

	if err := s.Dispatch.EnqueueGeneration(ctx, prov.ID); err != nil {
		// The provider exists but its slots will not appear until the task
		// is re-enqueued; surface the failure instead of hiding it.
		logger.Error("Failed to enqueue schedule generation",
			zap.String("providerId", prov.ID), zap.Error(err))
		return nil, err
	}

	logger.Info("Provider created, schedule generation dispatched",
		zap.String("providerId", prov.ID),
		zap.String("branchId", branchID))
	return prov, nil
}

func (s *DefaultProviderService) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, utils.NotFoundf("provider %s not found", id)
	}
	return prov, nil
}

func (s *DefaultProviderService) ListProvidersByBranch(ctx context.Context, branchID string) ([]models.Provider, error) {
	branch, err := s.Branches.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, utils.NotFoundf("branch %s not found", branchID)
	}
	return s.Repo.ListByBranch(branchID)
}

// DeleteProvider removes the provider and every slot it owns. Slots have no
// independent existence outside their provider.
func (s *DefaultProviderService) DeleteProvider(ctx context.Context, id string) error {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if prov == nil {
		return utils.NotFoundf("provider %s not found", id)
	}
	if err := s.Slots.DeleteByProvider(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
