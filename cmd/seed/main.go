// Command seed provisions a fresh database with a demo fleet, a day of
// flights around the home airport and a default operator account. Safe to
// rerun: rows that already exist are skipped.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"flightdesk/config"
	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	airDto "flightdesk/internal/domains/aircraft/model/dto"
	aircraftRepository "flightdesk/internal/domains/aircraft/repository"
	aircraftService "flightdesk/internal/domains/aircraft/service"
	fltDto "flightdesk/internal/domains/flight/model/dto"
	flightRepository "flightdesk/internal/domains/flight/repository"
	flightService "flightdesk/internal/domains/flight/service"
	userDto "flightdesk/internal/domains/user/model/dto"
	userRepository "flightdesk/internal/domains/user/repository"
	authService "flightdesk/internal/domains/user/service"
	"flightdesk/shared/datefmt"
	"flightdesk/shared/failure"
	"flightdesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	conn, err := sqlite.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer conn.Close()

	tracer := otel.New(cfg)
	ctx := context.Background()

	flights := flightService.New(flightRepository.New(conn, tracer), tracer)
	aircrafts := aircraftService.New(aircraftRepository.New(conn, tracer), tracer)
	auth := authService.New(userRepository.New(conn, tracer), cfg, tracer)

	today := datefmt.Today()

	for _, req := range demoFlights(cfg.App.HomeAirport, today) {
		if err := flights.Add(ctx, req); err != nil {
			if failure.IsKind(err, failure.KindConflict) {
				log.Info().Str("flight", req.FlightNumber).Msg("flight already seeded")

				continue
			}

			log.Fatal().Err(err).Str("flight", req.FlightNumber).Msg("failed to seed flight")
		}
	}

	for _, req := range demoFleet() {
		if err := aircrafts.Add(ctx, req); err != nil {
			log.Fatal().Err(err).Str("model", req.Model).Msg("failed to seed aircraft")
		}
	}

	operator := userDto.RegisterUserRequest{Name: "Operator", Login: "operator", Password: "operator"}

	if err := auth.Register(ctx, operator); err != nil {
		if !failure.IsKind(err, failure.KindConflict) {
			log.Fatal().Err(err).Msg("failed to seed operator account")
		}

		log.Info().Msg("operator account already seeded")
	}

	log.Info().Str("db", conn.Path).Msg("seeding complete")
}

func demoFlights(home, date string) []fltDto.CreateFlightRequest {
	return []fltDto.CreateFlightRequest{
		{
			FlightNumber:     "SU100",
			DepartureAirport: home,
			DepartureCity:    "Moscow",
			DepartureDate:    date,
			DepartureTime:    "08:15",
			ArrivalAirport:   "LED",
			ArrivalCity:      "Saint Petersburg",
			ArrivalDate:      date,
			ArrivalTime:      "09:45",
			AvailableSeats:   250,
		},
		{
			FlightNumber:     "SU210",
			DepartureAirport: home,
			DepartureCity:    "Moscow",
			DepartureDate:    date,
			DepartureTime:    "12:30",
			ArrivalAirport:   "AER",
			ArrivalCity:      "Sochi",
			ArrivalDate:      date,
			ArrivalTime:      "16:05",
			AvailableSeats:   250,
		},
		{
			FlightNumber:     "SU355",
			DepartureAirport: "OVB",
			DepartureCity:    "Novosibirsk",
			DepartureDate:    date,
			DepartureTime:    "06:40",
			ArrivalAirport:   home,
			ArrivalCity:      "Moscow",
			ArrivalDate:      date,
			ArrivalTime:      "07:55",
			AvailableSeats:   250,
		},
	}
}

func demoFleet() []airDto.CreateAircraftRequest {
	return []airDto.CreateAircraftRequest{
		{Model: "Airbus A320neo", Capacity: 180, LastMaintenance: "2026-07-14", Status: "in service"},
		{Model: "Boeing 777-300ER", Capacity: 402, LastMaintenance: "2026-05-02", Status: "in service"},
		{Model: "Sukhoi Superjet 100", Capacity: 98, LastMaintenance: "2026-08-21", Status: "maintenance"},
	}
}
