package provider

import (
	"context"

	branchRepo "easyappointment/database/repository/branch"
	providerRepo "easyappointment/database/repository/provider"
	slotRepo "easyappointment/database/repository/slot"
	"easyappointment/models"
)

// ScheduleDispatcher hands schedule generation off to the background
// worker. Provider creation responds before the slot set exists; the gap
// until the worker finishes is an expected eventual-consistency window, not
// a bug.
type ScheduleDispatcher interface {
	EnqueueGeneration(ctx context.Context, providerID string) error
}

// ProviderService manages scheduling providers within a branch.
type ProviderService interface {
	CreateProvider(ctx context.Context, branchID string, req models.CreateProviderRequest) (*models.Provider, error)
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
	ListProvidersByBranch(ctx context.Context, branchID string) ([]models.Provider, error)
	// DeleteProvider removes the provider and cascades to its slot set.
	DeleteProvider(ctx context.Context, id string) error
}

// DefaultProviderService is the concrete implementation.
type DefaultProviderService struct {
	Repo     providerRepo.ProviderRepository
	Branches branchRepo.BranchRepository
	Slots    slotRepo.SlotRepository
	Dispatch ScheduleDispatcher
}
