package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	slotRepo "easyappointment/database/repository/slot"
	"easyappointment/models"
)

// fakeStore backs both repository interfaces with one mutex-guarded map
// pair, mirroring the all-or-nothing semantics of the mongo transaction:
// a claim either applies to every slot or to none.
type fakeStore struct {
	mu       sync.Mutex
	slots    map[string]*models.Slot
	bookings map[string]*models.Booking

	// beforeClaim, when set, runs inside ClaimForBooking before the version
	// check, to interleave a competing write.
	beforeClaim func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:    make(map[string]*models.Slot),
		bookings: make(map[string]*models.Booking),
	}
}

func (f *fakeStore) addSlot(s models.Slot) {
	f.slots[s.ID] = &s
}

func (f *fakeStore) addBooking(b models.Booking) {
	f.bookings[b.ID] = &b
}

func (f *fakeStore) BulkInsert(slots []models.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range slots {
		s := slots[i]
		f.slots[s.ID] = &s
	}
	return nil
}

func (f *fakeStore) GetByID(id string) (*models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStore) GetByIDs(ids []string) ([]models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Slot
	for _, id := range ids {
		if s, ok := f.slots[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByProviderAndRange(providerID string, from, to time.Time) ([]models.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Slot
	for _, s := range f.slots {
		if s.ProviderID == providerID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeStore) DeleteByProvider(providerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.slots {
		if s.ProviderID == providerID {
			delete(f.slots, id)
		}
	}
	return nil
}

func (f *fakeStore) DeleteByProviderFrom(providerID string, from time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.slots {
		if s.ProviderID == providerID && !s.StartTime.Before(from) {
			delete(f.slots, id)
		}
	}
	return nil
}

func (f *fakeStore) ClaimForBooking(ctx context.Context, booking *models.Booking, slots []models.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.beforeClaim != nil {
		hook := f.beforeClaim
		f.beforeClaim = nil
		hook()
	}

	for i := range slots {
		cur, ok := f.slots[slots[i].ID]
		if !ok || cur.BookingID != "" || cur.Version != slots[i].Version {
			return slotRepo.ErrWriteConflict
		}
	}
	for i := range slots {
		cur := f.slots[slots[i].ID]
		cur.BookingID = booking.ID
		cur.Version++
	}
	cp := *booking
	f.bookings[cp.ID] = &cp
	return nil
}

func (f *fakeStore) ReleaseBooking(ctx context.Context, bookingID, status string, slotIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok || b.Status != models.BookingStatusConfirmed {
		return slotRepo.ErrWriteConflict
	}
	b.Status = status
	for _, id := range slotIDs {
		if s, ok := f.slots[id]; ok {
			s.BookingID = ""
			s.Version++
		}
	}
	return nil
}

// BookingRepository

func (f *fakeStore) bookingByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeStore) FindByUser(userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

// fakeBookings adapts fakeStore to the booking repository interface without
// colliding with the slot repository's GetByID.
type fakeBookings struct {
	store *fakeStore
}

func (f *fakeBookings) GetByID(id string) (*models.Booking, error) {
	return f.store.bookingByID(id)
}

func (f *fakeBookings) FindByUser(userID string) ([]models.Booking, error) {
	return f.store.FindByUser(userID)
}

func newTestService(store *fakeStore, now time.Time) *DefaultBookingService {
	return &DefaultBookingService{
		Slots:    store,
		Bookings: &fakeBookings{store: store},
		Now:      func() time.Time { return now },
	}
}
