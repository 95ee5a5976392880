package models

// Branch supplies the opening and closing bounds shared by all of its
// providers. Times are minutes from midnight, applied uniformly to dates.
type Branch struct {
	ID          string `bson:"id" json:"id"`
	BusinessID  string `bson:"businessId,omitempty" json:"businessId,omitempty"`
	Name        string `bson:"name" json:"name"`
	OpeningTime int    `bson:"openingTime" json:"openingTime"`
	ClosingTime int    `bson:"closingTime" json:"closingTime"`
}

// CreateBranchRequest is the payload for opening a branch.
type CreateBranchRequest struct {
	Name        string `json:"name" binding:"required"`
	BusinessID  string `json:"businessId"`
	OpeningTime int    `json:"openingTime" binding:"required"`
	ClosingTime int    `json:"closingTime" binding:"required"`
}
