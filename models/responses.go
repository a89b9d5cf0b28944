package models

// ValidateResponse is the body returned by the session validation endpoint.
// Valid is false for any token that fails signature or expiration checks;
// in that case Claim is omitted.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Claim *Claim `json:"claim,omitempty"`
}

// RegisterRequest is a player record submitted for registration together
// with the secret taken from the Authorization header.
type RegisterRequest struct {
	Player PlayerSubmission
	Secret []byte
}

// LoginRequest carries the account name from the body and the secret taken
// from the Authorization header.
type LoginRequest struct {
	Account Account
	Secret  []byte
}
