package user

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER VIEWER"`
	Status   string `json:"status" binding:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
}

type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=ADMIN USER VIEWER"`
	Status string `json:"status" binding:"required,oneof=PENDING ACTIVE INACTIVE"`
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// DeleteUserRequest carries the secondary confirmation code checked against
// the master delete hash.
type DeleteUserRequest struct {
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
