package domain

import "time"

// Feedback is only accepted by the server after the event has ended;
// the client never checks eligibility itself.
type Feedback struct {
	ID          string        `json:"id"`
	EventID     string        `json:"eventId"`
	UserID      string        `json:"userId"`
	Rating      int           `json:"rating"`
	Comment     string        `json:"comment,omitempty"`
	IsAnonymous bool          `json:"isAnonymous"`
	CreatedAt   time.Time     `json:"createdAt"`
	User        *FeedbackUser `json:"user,omitempty"`
}

type FeedbackUser struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type FeedbackStats struct {
	AverageRating      float64        `json:"averageRating"`
	TotalReviews       int            `json:"totalReviews"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}
