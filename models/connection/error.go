package connection

import "fmt"

// What a session loop should do after a websocket error.
const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
	ConnLoopContinue
)

type ConnErr struct {
	code      uint8
	sessionId string
	desc      string
}

func NewConnErr(code uint8, sessionId string) ConnErr {
	return ConnErr{code: code, sessionId: sessionId}
}

func (c ConnErr) AddDesc(desc string) ConnErr {
	c.desc = desc
	return c
}

func (c ConnErr) Error() string {
	return fmt.Sprintf("connection error - code: %d\tsession: %s\tdesc: %s", c.code, c.sessionId, c.desc)
}

func (c ConnErr) Code() uint8 {
	return c.code
}
