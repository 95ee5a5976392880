package branchRepo

import "easyappointment/models"

// BranchRepository defines data access for branches.
// Lookups return (nil, nil) when no document matches.
type BranchRepository interface {
	Create(branch *models.Branch) error
	GetByID(id string) (*models.Branch, error)
}
