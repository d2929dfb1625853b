package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func InetOf(ipnet net.IPNet) pqtype.Inet {
	return pqtype.Inet{IPNet: ipnet, Valid: true}
}

// RecordMatch adds one finished match to the server's counters.
func (a *AnalyticsManager) RecordMatch(ctx context.Context, serverIpNet pqtype.Inet, humanWon bool, shots int) error {
	params := AnalyticsRecordMatchParams{
		ServerIp:   serverIpNet,
		ShotsFired: int64(shots),
	}
	if humanWon {
		params.HumanWins = 1
	} else {
		params.AiWins = 1
	}

	return a.queries.AnalyticsRecordMatch(ctx, params)
}

func (a *AnalyticsManager) GetMatchesPlayed(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetMatchesPlayed(ctx, serverIpNet)
}
