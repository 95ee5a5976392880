package models

// NumWeekdays is the length of a provider's working-day flag array.
const NumWeekdays = 7

// BreakWindow is a recurring daily interval, in minutes from midnight,
// during which no slot may be scheduled. Windows are half-open: [Start, End).
type BreakWindow struct {
	Start int `bson:"start" json:"start" binding:"required"`
	End   int `bson:"end" json:"end" binding:"required"`
}

// Provider is an entity offering sessions at a branch, defined by its
// working days, session length and break windows.
type Provider struct {
	ID              string            `bson:"id" json:"id"`
	Name            string            `bson:"name" json:"name"`
	BranchID        string            `bson:"branchId" json:"branchId"`
	WorkingDays     [NumWeekdays]bool `bson:"workingDays" json:"workingDays"`           // index 0 = Monday
	SessionDuration int               `bson:"sessionDuration" json:"sessionDuration"`   // minutes
	Breaks          []BreakWindow     `bson:"breaks,omitempty" json:"breaks,omitempty"` // ordered by Start
}

// HasWorkingDay reports whether at least one working-day flag is set.
func (p *Provider) HasWorkingDay() bool {
	for _, d := range p.WorkingDays {
		if d {
			return true
		}
	}
	return false
}

// CreateProviderRequest is the payload for registering a provider at a branch.
type CreateProviderRequest struct {
	Name            string            `json:"name" binding:"required"`
	WorkingDays     [NumWeekdays]bool `json:"workingDays" binding:"required"`
	SessionDuration int               `json:"sessionDuration" binding:"required"`
	Breaks          []BreakWindow     `json:"breaks"`
}
