package model

import "time"

// ReviewUser is the reviewer identity embedded in a review.
type ReviewUser struct {
	Name string `json:"name"`
}

// Review is a single product review.
type Review struct {
	ID        string      `json:"_id"`
	User      *ReviewUser `json:"user,omitempty"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ReviewRequest is the payload for submitting a new review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
