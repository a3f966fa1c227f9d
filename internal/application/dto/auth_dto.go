package dto

import "time"

// LoginRequest entrada del login por código de acceso.
type LoginRequest struct {
	AccessCode string `json:"access_code"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}
