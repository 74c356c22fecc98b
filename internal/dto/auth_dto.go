package dto

// LoginResponse returns the static token matching the requested role.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
