package dto

import "github.com/pratik-mahalle/gigmarket/internal/domain/review"

// ReviewCreateRequest is a new review payload
type ReviewCreateRequest struct {
	BusinessUser int64  `json:"business_user" validate:"required,gt=0"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Description  string `json:"description"`
}

// ToInput converts the request into the service-layer input
func (r ReviewCreateRequest) ToInput() review.CreateInput {
	return review.CreateInput{
		BusinessUserID: r.BusinessUser,
		Rating:         r.Rating,
		Description:    r.Description,
	}
}

// ReviewUpdateRequest is a partial review patch
type ReviewUpdateRequest struct {
	Rating      *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Description *string `json:"description"`
}

// ToInput converts the patch into the service-layer input
func (r ReviewUpdateRequest) ToInput() review.UpdateInput {
	return review.UpdateInput{
		Rating:      r.Rating,
		Description: r.Description,
	}
}
