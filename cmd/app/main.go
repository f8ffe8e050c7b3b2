package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"flightdesk/config"
	"flightdesk/di"
	"flightdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	board, err := di.InitializeBoard()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize board")
	}

	ctx := context.Background()

	if err := board.ReloadAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load board state")
	}

	fmt.Printf("--- %s departures ---\n", cfg.App.HomeAirport)

	for _, f := range board.Departures() {
		fmt.Printf("%-8s %s %s -> %s (%d seats)\n",
			f.FlightNumber, f.DepartureDate, f.DepartureTime, f.ArrivalCity, f.AvailableSeats)
	}

	fmt.Printf("--- %s arrivals ---\n", cfg.App.HomeAirport)

	for _, f := range board.Arrivals() {
		fmt.Printf("%-8s %s %s from %s\n",
			f.FlightNumber, f.DepartureDate, f.ArrivalTime, f.DepartureCity)
	}
}
