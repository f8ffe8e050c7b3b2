//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"flightdesk/config"
	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/board"

	aircraftRepository "flightdesk/internal/domains/aircraft/repository"
	aircraftService "flightdesk/internal/domains/aircraft/service"
	flightRepository "flightdesk/internal/domains/flight/repository"
	flightService "flightdesk/internal/domains/flight/service"
	passengerRepository "flightdesk/internal/domains/passenger/repository"
	passengerService "flightdesk/internal/domains/passenger/service"
	userRepository "flightdesk/internal/domains/user/repository"
	authService "flightdesk/internal/domains/user/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var aircraftDomain = wire.NewSet(
	aircraftRepository.New,
	aircraftService.New,
)

var passengerDomain = wire.NewSet(
	passengerRepository.New,
	passengerService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	flightDomain,
	aircraftDomain,
	passengerDomain,
	authDomain,
)

func InitializeBoard() (*board.Board, error) {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		board.New,
	)

	return &board.Board{}, nil
}
