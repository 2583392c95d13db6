package linking

// TokenLength is the entropy in bytes of a minted anonymous token.
const TokenLength = 10

// Error messages
const (
	ErrMsgEmptyToken      = "player token is empty"
	ErrMsgTokenGeneration = "failed to generate token"
)
