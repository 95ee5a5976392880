package providerRepo

import "easyappointment/models"

// ProviderRepository defines data access for scheduling providers.
// Lookups return (nil, nil) when no document matches.
type ProviderRepository interface {
	Create(provider *models.Provider) error
	GetByID(id string) (*models.Provider, error)
	ExistsByNameAndBranch(name, branchID string) (bool, error)
	ListByBranch(branchID string) ([]models.Provider, error)
	Delete(id string) error
}
