package schedule

import (
	"context"
	"sort"
	"time"

	"easyappointment/models"
)

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (f *fakeProviderRepo) Create(p *models.Provider) error {
	f.providers[p.ID] = p
	return nil
}

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	return f.providers[id], nil
}

func (f *fakeProviderRepo) ExistsByNameAndBranch(name, branchID string) (bool, error) {
	for _, p := range f.providers {
		if p.Name == name && p.BranchID == branchID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProviderRepo) ListByBranch(branchID string) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		if p.BranchID == branchID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) Delete(id string) error {
	delete(f.providers, id)
	return nil
}

type fakeBranchRepo struct {
	branches map[string]*models.Branch
}

func (f *fakeBranchRepo) Create(b *models.Branch) error {
	f.branches[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) GetByID(id string) (*models.Branch, error) {
	return f.branches[id], nil
}

// fakeSlotStore records inserts and serves range queries; the transactional
// claim and release paths are exercised by the booking package's fakes.
type fakeSlotStore struct {
	inserted []models.Slot
}

func (f *fakeSlotStore) BulkInsert(slots []models.Slot) error {
	f.inserted = append(f.inserted, slots...)
	return nil
}

func (f *fakeSlotStore) GetByID(id string) (*models.Slot, error) {
	for i := range f.inserted {
		if f.inserted[i].ID == id {
			s := f.inserted[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSlotStore) GetByIDs(ids []string) ([]models.Slot, error) {
	var out []models.Slot
	for _, id := range ids {
		if s, _ := f.GetByID(id); s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlotStore) FindByProviderAndRange(providerID string, from, to time.Time) ([]models.Slot, error) {
	var out []models.Slot
	for i := range f.inserted {
		s := f.inserted[i]
		if s.ProviderID == providerID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeSlotStore) DeleteByProvider(providerID string) error {
	kept := f.inserted[:0]
	for i := range f.inserted {
		if f.inserted[i].ProviderID != providerID {
			kept = append(kept, f.inserted[i])
		}
	}
	f.inserted = kept
	return nil
}

func (f *fakeSlotStore) DeleteByProviderFrom(providerID string, from time.Time) error {
	kept := f.inserted[:0]
	for i := range f.inserted {
		if f.inserted[i].ProviderID != providerID || f.inserted[i].StartTime.Before(from) {
			kept = append(kept, f.inserted[i])
		}
	}
	f.inserted = kept
	return nil
}

func (f *fakeSlotStore) ClaimForBooking(ctx context.Context, booking *models.Booking, slots []models.Slot) error {
	return nil
}

func (f *fakeSlotStore) ReleaseBooking(ctx context.Context, bookingID, status string, slotIDs []string) error {
	return nil
}
