package request

type ListUsersRequest struct {
	PageRequest
	Description string `json:"description" validate:"max=100"`
}

type CreateUserRequest struct {
	FullName    string  `json:"full_name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,numeric,min=7,max=15"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// UpdateUserRequest changes only the fields that are present
type UpdateUserRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,numeric,min=7,max=15"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	ProfilePic  *string `json:"profile_pic,omitempty" validate:"omitempty,url"`
}

type AddCreditsRequest struct {
	Amount int `json:"amount" validate:"required"`
}
