package connection

type NoPayload bool

// Message is the envelope of everything written to a spectator.
type Message[T any] struct {
	Code      uint8    `json:"code"`
	MatchUuid string   `json:"match_uuid,omitempty"`
	Payload   T        `json:"payload,omitempty"`
	Error     *RespErr `json:"error,omitempty"`
}

func NewMessage[T any](code uint8) Message[T] {
	return Message[T]{Code: code}
}

func NewMatchMessage[T any](code uint8, matchUuid string, payload T) Message[T] {
	return Message[T]{Code: code, MatchUuid: matchUuid, Payload: payload}
}

func (m *Message[T]) AddPayload(payload T) {
	m.Payload = payload
}

func (m *Message[T]) AddError(errorDetails, message string) {
	m.Error = NewRespErr(errorDetails, message)
}
