package connection

import (
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

type RespSpectating struct {
	SessionID string `json:"session_id"`
	MatchUuid string `json:"match_uuid"`
}

type RespTurn struct {
	Player string `json:"player"`
	Shots  int    `json:"shots"`
}

// Coordinates are sent 0-indexed. Ship positions never leave the
// server, only the outcome of each shot.
type RespShot struct {
	Player              string         `json:"player"`
	Target              mb.Coordinates `json:"target"`
	Outcome             string         `json:"outcome"`
	IsTurn              bool           `json:"is_turn"`
	SunkenShipsHuman    int            `json:"sunken_ships_human"`
	SunkenShipsComputer int            `json:"sunken_ships_computer"`
}

type RespRejected struct {
	Player string         `json:"player"`
	Target mb.Coordinates `json:"target"`
	Reason string         `json:"reason"`
}

type RespMatchEnded struct {
	Winner string `json:"winner"`
	Shots  int    `json:"shots"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
