package request

type ReviewRequest struct {
	Content    string `json:"content" validate:"required,notblank,max=1000"`
	IsPositive *bool  `json:"isPositive" validate:"required"`
	UserID     int64  `json:"userId" validate:"gt=0"`
	FilmID     int64  `json:"filmId" validate:"gt=0"`
}

// ReviewUpdateRequest carries the review id in the body; author and film are ignored
type ReviewUpdateRequest struct {
	ReviewID   int64   `json:"reviewId" validate:"gt=0"`
	Content    *string `json:"content,omitempty" validate:"omitempty,notblank,max=1000"`
	IsPositive *bool   `json:"isPositive,omitempty"`
}
