package dto

// LoginRequest carries console credentials, passed through to the upstream
// token endpoint verbatim.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionStatus reports whether a console session token is present.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}
