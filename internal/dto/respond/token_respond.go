package respond

// TokenRespond login result, Token already carries the "Bearer " prefix.
type TokenRespond struct {
	Token string `json:"token"`
}
