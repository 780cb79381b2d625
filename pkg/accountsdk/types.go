package accountsdk

import "time"

// User is the public shape of an account. The password hash is never part
// of any response.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// RegisterRequest is the body for POST /register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is the 201 body for POST /register. CreatedAt is the
// only timestamp returned on creation.
type RegisterResponse struct {
	User User `json:"user"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the 200 body for POST /login.
type LoginResponse struct {
	Token string `json:"token"`
}

// MeResponse is the 200 body for GET /me.
type MeResponse struct {
	User User `json:"user"`
}
