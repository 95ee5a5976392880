package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"easyappointment/models"
	"easyappointment/utils"
)

// Generate expands the provider's recurring weekly availability into a
// bounded set of discrete, non-overlapping slots within branch hours over
// the horizon. It is pure: persistence is the caller's concern.
//
// Per flagged weekday the walk starts at the first matching date on or
// after today (today itself counts), places a cursor at branch opening and
// emits a slot whenever a full session fits before closing without touching
// a break window. After each advance the cursor is pushed past any break it
// landed inside, so slots after a break start at the break's end rather
// than at a stale duration boundary. Trailing windows shorter than one
// session are dropped, never truncated.
func Generate(p *models.Provider, b *models.Branch, now time.Time, horizonMonths int) ([]models.Slot, error) {
	if !p.HasWorkingDay() {
		return nil, utils.Validationf("provider %s must have at least one working day", p.ID)
	}
	if p.SessionDuration <= 0 {
		return nil, utils.Validationf("session duration must be positive, got %d", p.SessionDuration)
	}
	if b.OpeningTime < 0 || b.ClosingTime > minutesPerDay || b.OpeningTime >= b.ClosingTime {
		return nil, utils.Validationf("branch hours [%d, %d) are invalid", b.OpeningTime, b.ClosingTime)
	}
	if err := ValidateBreaks(p.Breaks); err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, horizonMonths, 0)
	duration := p.SessionDuration

	var slots []models.Slot
	for i, working := range p.WorkingDays {
		if !working {
			continue
		}
		date := NextWorkingDay(today, weekdayForIndex(i))
		for !date.After(horizon) {
			cursor := b.OpeningTime
			for cursor+duration <= b.ClosingTime {
				if !overlapsBreak(cursor, cursor+duration, p.Breaks) {
					start := date.Add(time.Duration(cursor) * time.Minute)
					slots = append(slots, models.Slot{
						ID:         uuid.New().String(),
						ProviderID: p.ID,
						StartTime:  start,
						EndTime:    start.Add(time.Duration(duration) * time.Minute),
						Duration:   duration,
					})
				}
				cursor += duration
				if breakEnd, inside := breakEndContaining(cursor, p.Breaks); inside {
					cursor = breakEnd
				}
			}
			date = date.AddDate(0, 0, 7)
		}
	}
	return slots, nil
}

// GenerateSchedule loads the provider and its branch, expands the slot set
// and bulk-persists it. The provider's slots from today onward are cleared
// first: BulkInsert is an ordered write, so a mid-insert failure followed
// by a task retry would otherwise duplicate the already-persisted prefix.
func (s *DefaultScheduleService) GenerateSchedule(ctx context.Context, providerID string) (int, error) {
	logger := utils.GetLogger()

	prov, err := s.Providers.GetByID(providerID)
	if err != nil {
		return 0, err
	}
	if prov == nil {
		return 0, utils.NotFoundf("provider %s not found", providerID)
	}
	branch, err := s.Branches.GetByID(prov.BranchID)
	if err != nil {
		return 0, err
	}
	if branch == nil {
		return 0, utils.NotFoundf("branch %s not found for provider %s", prov.BranchID, providerID)
	}

	now := s.now()
	slots, err := Generate(prov, branch, now, s.horizonMonths())
	if err != nil {
		return 0, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := s.Slots.DeleteByProviderFrom(providerID, today); err != nil {
		return 0, err
	}
	if err := s.Slots.BulkInsert(slots); err != nil {
		return 0, err
	}

	logger.Info("Generated provider schedule",
		zap.String("providerId", providerID),
		zap.Int("slots", len(slots)))
	return len(slots), nil
}
