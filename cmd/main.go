package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/seabattle/api"
	"github.com/saeidalz13/seabattle/console"
	"github.com/saeidalz13/seabattle/db"
	"github.com/saeidalz13/seabattle/db/sqlc"
	"github.com/saeidalz13/seabattle/internal/config"
	"github.com/saeidalz13/seabattle/internal/random"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

const shutdownTimeout = time.Second * 5

func main() {
	if err := run(); err != nil {
		log.Error("match aborted", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.MustLoad(".env")
	log.SetLevel(cfg.Level())

	rng, err := random.NewProvider(cfg.Seed)
	if err != nil {
		return err
	}
	log.Debug("randomness", "seed", rng.Seed())

	bsm := mc.NewBattleshipSessionManager()
	bmm := mb.NewBattleshipMatchManager()

	console.Greet(os.Stdout)
	notifier := mb.MultiNotifier{console.NewNotifier(os.Stdout), bsm}
	match := bmm.CreateMatch(rng, console.NewInputTargeter(os.Stdin, os.Stdout), notifier)
	defer bmm.TerminateMatch(match.Uuid())

	if cfg.SpectatorEnabled() {
		server := api.NewSpectatorServer(cfg.SpectatorPort, api.NewSpectatorProcessor(bsm, bmm))
		go func() {
			log.Info("spectator feed listening", "addr", server.Addr, "match", match.Uuid())
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("spectator feed stopped", "err", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = server.Shutdown(ctx)
		}()
	}

	winner, err := match.Run()
	if err != nil {
		return err
	}

	if cfg.AnalyticsEnabled() {
		recordMatch(cfg.DatabaseURL, winner.IsHuman(), match.Shots())
	}
	return nil
}

// recordMatch never fails the process; analytics are best effort.
func recordMatch(databaseURL string, humanWon bool, shots int) {
	ipnet, err := api.ServerIpNet()
	if err != nil {
		log.Warn("skipping analytics", "err", err)
		return
	}

	psql, err := db.ConnectToDb(databaseURL)
	if err != nil {
		log.Warn("skipping analytics", "err", err)
		return
	}
	defer psql.Close()
	dbm := sqlc.NewDbManager(sqlc.New(psql))

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := dbm.Analytics.RecordMatch(ctx, sqlc.InetOf(ipnet), humanWon, shots); err != nil {
		log.Warn("failed to record match", "err", err)
		return
	}
	log.Debug("match recorded", "server_ip", ipnet.String())
}
