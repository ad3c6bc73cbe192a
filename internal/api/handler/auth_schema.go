package handler

// messageResponse is the envelope for plain status messages.
type messageResponse struct {
	Message string `json:"message"`
}

type signupRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	Role      string `json:"role"      validate:"required,oneof=CUSTOMER MERCHANT"`
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type authResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
