package handler

type createProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=80"`
	Bio         string `json:"bio,omitempty" validate:"max=1000"`
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=80"`
	Bio         *string `json:"bio,omitempty"          validate:"omitempty,max=1000"`
}
