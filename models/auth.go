package models

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	Session `json:"session"`
}

// Session is the persisted marker of an authenticated user; its presence under
// the user key is what gates the non-login routes.
type Session struct {
	Email   string `json:"email"`
	LoginAt string `json:"loginAt"`
}

// SessionPayload travels between the auth middleware and the handlers through
// the request "payload" header.
type SessionPayload struct {
	Session `json:"session"`
}
