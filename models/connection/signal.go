package connection

const (
	// Sent once after the spectator is attached to a match
	CodeSpectating uint8 = iota
	CodeInvalidMatch

	CodeTurn
	CodeShot
	CodeShotRejected
	CodeMatchEnded

	// Spectators are read-only; anything they send gets this
	CodeInvalidSignal
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
