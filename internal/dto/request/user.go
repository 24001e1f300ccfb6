package request

type UserRequest struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email" validate:"required,email"`
	Login    string  `json:"login" validate:"required,nowhitespace,max=255"`
	Name     string  `json:"name" validate:"max=255"`
	Birthday string  `json:"birthday" validate:"required,datetime=2006-01-02"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}
