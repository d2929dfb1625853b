package error

import (
	"errors"
	"fmt"
)

// Conditions callers branch on with errors.Is. The
// constructor funcs below wrap these with context.
var (
	ErrOutOfBounds              = errors.New("position is out of grid bound")
	ErrAlreadyTargeted          = errors.New("position was already targeted")
	ErrInvalidPlacement         = errors.New("ship cannot be placed here")
	ErrFleetGenerationExhausted = errors.New("fleet generation ran out of attempts")
	ErrMatchNotFound            = errors.New("match does not exist")
	ErrInvalidStage             = errors.New("stage must be either dev or prod")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrPositionAlreadyTargeted(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrShipPlacement(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrInvalidPlacement, x, y)
}

func ErrFleetExhausted(attempts int) error {
	return fmt.Errorf("%w\tattempts: %d", ErrFleetGenerationExhausted, attempts)
}

func ErrMatchNotExists(matchUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrMatchNotFound, matchUuid)
}

func ErrStage(stage string) error {
	return fmt.Errorf("%w\tgot: %q", ErrInvalidStage, stage)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}
