package dto

import "github.com/pratik-mahalle/gigmarket/internal/domain/profile"

// ProfileUpdateRequest is a partial profile patch; absent fields stay
// untouched
type ProfileUpdateRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,max=30"`
	LastName     *string `json:"last_name" validate:"omitempty,max=30"`
	File         *string `json:"file"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
	Tel          *string `json:"tel" validate:"omitempty,max=15"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours" validate:"omitempty,max=50"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

// ToInput converts the request into the service-layer patch
func (r ProfileUpdateRequest) ToInput() profile.UpdateInput {
	return profile.UpdateInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		File:         r.File,
		Location:     r.Location,
		Tel:          r.Tel,
		Description:  r.Description,
		WorkingHours: r.WorkingHours,
		Email:        r.Email,
	}
}

// ProfileListItem is the trimmed representation used by the type listings
type ProfileListItem struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	File      string `json:"file"`
	Location  string `json:"location,omitempty"`
	Tel       string `json:"tel,omitempty"`
	Type      string `json:"type"`
}

// NewProfileListItems trims full profiles down to the listing shape
func NewProfileListItems(profiles []*profile.Profile) []ProfileListItem {
	items := make([]ProfileListItem, len(profiles))
	for i, p := range profiles {
		items[i] = ProfileListItem{
			ID:        p.ID,
			UserID:    p.UserID,
			Username:  p.Username,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			File:      p.File,
			Location:  p.Location,
			Tel:       p.Tel,
			Type:      p.Type,
		}
	}
	return items
}

// UploadResponse returns the stored path of an uploaded file
type UploadResponse struct {
	File string `json:"file"`
}
