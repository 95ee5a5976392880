package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"easyappointment/models"
	"easyappointment/utils"
)

var bookingDay = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func slotAt(id, providerID string, hour int) models.Slot {
	start := bookingDay.Add(time.Duration(hour) * time.Hour)
	return models.Slot{
		ID:         id,
		ProviderID: providerID,
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Duration:   30,
	}
}

func TestCreateBooking_ClaimsAllSlots(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	store.addSlot(slotAt("s2", "prov-1", 10))
	svc := newTestService(store, bookingDay)

	b, err := svc.CreateBooking(context.Background(), "user-1", []string{"s1", "s2"}, "prov-1")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected Confirmed, got %q", b.Status)
	}
	if b.UserID != "user-1" || b.ProviderID != "prov-1" {
		t.Fatalf("booking carries wrong parties: %+v", b)
	}
	if len(b.SlotIDs) != 2 || b.SlotIDs[0] != "s1" || b.SlotIDs[1] != "s2" {
		t.Fatalf("booking references %v, want [s1 s2]", b.SlotIDs)
	}
	for _, id := range []string{"s1", "s2"} {
		s, _ := store.GetByID(id)
		if s.BookingID != b.ID {
			t.Fatalf("slot %s links to %q, want %q", id, s.BookingID, b.ID)
		}
		if s.Available() {
			t.Fatalf("slot %s still available after claim", id)
		}
		if s.Version != 1 {
			t.Fatalf("slot %s version = %d, want 1", id, s.Version)
		}
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	svc := newTestService(store, bookingDay)
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, "user-1", nil, "prov-1"); !utils.IsValidation(err) {
		t.Fatalf("expected validation error for empty slot set, got %v", err)
	}
	if _, err := svc.CreateBooking(ctx, "", []string{"s1"}, "prov-1"); !utils.IsValidation(err) {
		t.Fatalf("expected validation error for empty user, got %v", err)
	}
	// A slot belonging to another provider is a malformed request, not a
	// race, so it surfaces as validation rather than conflict.
	if _, err := svc.CreateBooking(ctx, "user-1", []string{"s1"}, "prov-2"); !utils.IsValidation(err) {
		t.Fatalf("expected validation error for provider mismatch, got %v", err)
	}
}

func TestCreateBooking_DuplicateSlotIDs(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	svc := newTestService(store, bookingDay)

	_, err := svc.CreateBooking(context.Background(), "user-1", []string{"s1", "s1"}, "prov-1")
	if !utils.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate slot ids, got %v", err)
	}
	s, _ := store.GetByID("s1")
	if !s.Available() {
		t.Fatalf("slot claimed despite rejected request")
	}
}

func TestCreateBooking_UnknownSlot(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	svc := newTestService(store, bookingDay)

	_, err := svc.CreateBooking(context.Background(), "user-1", []string{"s1", "ghost"}, "prov-1")
	if !utils.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
	s, _ := store.GetByID("s1")
	if !s.Available() {
		t.Fatalf("existing slot claimed despite failed booking")
	}
}

func TestCreateBooking_SlotAlreadyClaimed(t *testing.T) {
	store := newFakeStore()
	taken := slotAt("s1", "prov-1", 9)
	taken.BookingID = "other-booking"
	store.addSlot(taken)
	store.addSlot(slotAt("s2", "prov-1", 10))
	svc := newTestService(store, bookingDay)

	_, err := svc.CreateBooking(context.Background(), "user-1", []string{"s1", "s2"}, "prov-1")
	if !utils.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	s2, _ := store.GetByID("s2")
	if !s2.Available() || s2.Version != 0 {
		t.Fatalf("free slot touched by rejected booking: %+v", s2)
	}
}

func TestCreateBooking_LostRaceLeavesNoPartialState(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	store.addSlot(slotAt("s2", "prov-1", 10))
	svc := newTestService(store, bookingDay)

	// A competing writer grabs s2 after the snapshot read, inside the claim.
	store.beforeClaim = func() {
		store.slots["s2"].BookingID = "rival"
		store.slots["s2"].Version++
	}

	_, err := svc.CreateBooking(context.Background(), "user-1", []string{"s1", "s2"}, "prov-1")
	if !utils.IsConcurrency(err) {
		t.Fatalf("expected concurrency error, got %v", err)
	}
	s1, _ := store.GetByID("s1")
	if !s1.Available() || s1.Version != 0 {
		t.Fatalf("losing claim left partial state on s1: %+v", s1)
	}
	bookings, _ := store.FindByUser("user-1")
	if len(bookings) != 0 {
		t.Fatalf("losing claim persisted a booking: %+v", bookings)
	}
}

func TestCreateBooking_ConcurrentSingleWinner(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	svc := newTestService(store, bookingDay)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), "user-1", []string{"s1"}, "prov-1")
		}(i)
	}
	wg.Wait()

	wins := 0
	for i, err := range errs {
		switch {
		case err == nil:
			wins++
		case utils.IsConflict(err) || utils.IsConcurrency(err):
		default:
			t.Fatalf("attempt %d: unexpected error %v", i, err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning claim, got %d", wins)
	}
	s, _ := store.GetByID("s1")
	if s.Available() {
		t.Fatalf("slot unclaimed after a winning booking")
	}
}

func TestCancelBooking_ReleasesAllSlots(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	store.addSlot(slotAt("s2", "prov-1", 10))
	svc := newTestService(store, bookingDay)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, "user-1", []string{"s1", "s2"}, "prov-1")
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	// Cancelling via either member slot releases the whole booking.
	cancelled, err := svc.CancelBooking(ctx, "s2")
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.ID != b.ID || cancelled.Status != models.BookingStatusCancelled {
		t.Fatalf("cancelled booking = %+v", cancelled)
	}
	for _, id := range []string{"s1", "s2"} {
		s, _ := store.GetByID(id)
		if !s.Available() {
			t.Fatalf("slot %s still claimed after cancel", id)
		}
	}
	stored, _ := store.bookingByID(b.ID)
	if stored == nil || stored.Status != models.BookingStatusCancelled {
		t.Fatalf("booking record not retained as Cancelled: %+v", stored)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	svc := newTestService(store, bookingDay)
	ctx := context.Background()

	if _, err := svc.CancelBooking(ctx, "ghost"); !utils.IsNotFound(err) {
		t.Fatalf("expected not-found for unknown slot, got %v", err)
	}
	if _, err := svc.CancelBooking(ctx, "s1"); !utils.IsNotFound(err) {
		t.Fatalf("expected not-found for unclaimed slot, got %v", err)
	}
}

func TestCancelBooking_RepeatCancelConflicts(t *testing.T) {
	store := newFakeStore()
	claimed := slotAt("s1", "prov-1", 9)
	claimed.BookingID = "b1"
	store.addSlot(claimed)
	store.addBooking(models.Booking{
		ID:      "b1",
		UserID:  "user-1",
		SlotIDs: []string{"s1"},
		Status:  models.BookingStatusCancelled,
	})
	svc := newTestService(store, bookingDay)

	if _, err := svc.CancelBooking(context.Background(), "s1"); !utils.IsConflict(err) {
		t.Fatalf("expected conflict for already-cancelled booking, got %v", err)
	}
}

func TestCancelThenRebook(t *testing.T) {
	store := newFakeStore()
	store.addSlot(slotAt("s1", "prov-1", 9))
	svc := newTestService(store, bookingDay)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "user-1", []string{"s1"}, "prov-1")
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.CancelBooking(ctx, "s1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	second, err := svc.CreateBooking(ctx, "user-2", []string{"s1"}, "prov-1")
	if err != nil {
		t.Fatalf("rebooking a released slot: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("rebooking reused the cancelled booking id")
	}
	s, _ := store.GetByID("s1")
	if s.BookingID != second.ID {
		t.Fatalf("slot links to %q, want %q", s.BookingID, second.ID)
	}
}
