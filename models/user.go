package models

// User is the account snapshot issued by the upstream shop API. The
// gateway never computes or validates these fields; it only caches the
// snapshot for the life of the session.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SignInRequest carries storefront credentials, forwarded verbatim to
// the upstream API.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is what the upstream returns on a successful sign-in.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest is the profile edit payload, forwarded upstream
// as PATCH /update-profile.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
