package branch

import (
	"context"

	"github.com/google/uuid"

	branchRepo "easyappointment/database/repository/branch"
	"easyappointment/models"
	"easyappointment/utils"
)

// BranchService manages branches, the containers supplying opening and
// closing bounds to every provider they host.
type BranchService interface {
	CreateBranch(ctx context.Context, req models.CreateBranchRequest) (*models.Branch, error)
	GetBranch(ctx context.Context, id string) (*models.Branch, error)
}

// DefaultBranchService is the concrete implementation.
type DefaultBranchService struct {
	Repo branchRepo.BranchRepository
}

func (s *DefaultBranchService) CreateBranch(ctx context.Context, req models.CreateBranchRequest) (*models.Branch, error) {
	if req.OpeningTime < 0 || req.ClosingTime > 24*60 {
		return nil, utils.Validationf("branch hours [%d, %d) lie outside the day", req.OpeningTime, req.ClosingTime)
	}
	if req.OpeningTime >= req.ClosingTime {
		return nil, utils.Validationf("opening time %d must precede closing time %d", req.OpeningTime, req.ClosingTime)
	}

	b := &models.Branch{
		ID:          uuid.New().String(),
		BusinessID:  req.BusinessID,
		Name:        req.Name,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *DefaultBranchService) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFoundf("branch %s not found", id)
	}
	return b, nil
}
