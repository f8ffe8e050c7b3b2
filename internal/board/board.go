// Package board keeps the in-memory state the desktop views render from.
// Every cache is only repopulated through an explicit reload or one of the
// mutation wrappers, so a successful write is always followed by a refresh of
// the listings it affects.
package board

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"flightdesk/config"
	"flightdesk/infras/otel"
	airDto "flightdesk/internal/domains/aircraft/model/dto"
	aircraftSvc "flightdesk/internal/domains/aircraft/service"
	flightModel "flightdesk/internal/domains/flight/model"
	fltDto "flightdesk/internal/domains/flight/model/dto"
	flightSvc "flightdesk/internal/domains/flight/service"
	paxDto "flightdesk/internal/domains/passenger/model/dto"
	passengerSvc "flightdesk/internal/domains/passenger/service"
	userDto "flightdesk/internal/domains/user/model/dto"
	authSvc "flightdesk/internal/domains/user/service"
	"flightdesk/shared/constant"
)

type Board struct {
	flightService    flightSvc.Flight
	aircraftService  aircraftSvc.Aircraft
	passengerService passengerSvc.Passenger
	authService      authSvc.Auth
	cfg              *config.Config
	otel             otel.Otel

	mu         sync.RWMutex
	allFlights []fltDto.FlightResponse
	departures []fltDto.FlightResponse
	arrivals   []fltDto.FlightResponse
	fleet      []airDto.AircraftResponse
	userName   string
}

func New(
	flightService flightSvc.Flight,
	aircraftService aircraftSvc.Aircraft,
	passengerService passengerSvc.Passenger,
	authService authSvc.Auth,
	cfg *config.Config,
	otel otel.Otel,
) *Board {
	return &Board{
		flightService:    flightService,
		aircraftService:  aircraftService,
		passengerService: passengerService,
		authService:      authService,
		cfg:              cfg,
		otel:             otel,
		userName:         cfg.Auth.FallbackName,
	}
}

func (b *Board) Flights() []fltDto.FlightResponse {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.allFlights
}

func (b *Board) Departures() []fltDto.FlightResponse {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.departures
}

func (b *Board) Arrivals() []fltDto.FlightResponse {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.arrivals
}

func (b *Board) Fleet() []airDto.AircraftResponse {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.fleet
}

func (b *Board) UserName() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.userName
}

// ReloadFlights refreshes the full schedule cache, sorted by the given column
// when one is supplied.
func (b *Board) ReloadFlights(ctx context.Context, sortColumn string, ascending bool) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".ReloadFlights")
	defer scope.End()
	defer scope.TraceIfError(err)

	var flights []fltDto.FlightResponse

	if sortColumn == constant.Empty {
		flights, err = b.flightService.List(ctx)
	} else {
		flights, err = b.flightService.ListSorted(ctx, sortColumn, ascending)
	}

	if err != nil {
		return fmt.Errorf("failed to reload flights: %w", err)
	}

	b.mu.Lock()
	b.allFlights = flights
	b.mu.Unlock()

	return nil
}

// ReloadTimetable refreshes the departures and arrivals caches around the
// configured home airport.
func (b *Board) ReloadTimetable(ctx context.Context) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".ReloadTimetable")
	defer scope.End()
	defer scope.TraceIfError(err)

	home := b.cfg.App.HomeAirport

	departures, err := b.flightService.ListByDeparture(ctx, home)
	if err != nil {
		return fmt.Errorf("failed to reload departures: %w", err)
	}

	arrivals, err := b.flightService.ListByArrival(ctx, home)
	if err != nil {
		return fmt.Errorf("failed to reload arrivals: %w", err)
	}

	b.mu.Lock()
	b.departures = departures
	b.arrivals = arrivals
	b.mu.Unlock()

	return nil
}

func (b *Board) ReloadFleet(ctx context.Context) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".ReloadFleet")
	defer scope.End()
	defer scope.TraceIfError(err)

	fleet, err := b.aircraftService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload fleet: %w", err)
	}

	b.mu.Lock()
	b.fleet = fleet
	b.mu.Unlock()

	return nil
}

// ReloadAll repopulates every cache. Called once on startup.
func (b *Board) ReloadAll(ctx context.Context) error {
	if err := b.ReloadFlights(ctx, constant.Empty, true); err != nil {
		return err
	}

	if err := b.ReloadTimetable(ctx); err != nil {
		return err
	}

	return b.ReloadFleet(ctx)
}

func (b *Board) AddFlight(ctx context.Context, req fltDto.CreateFlightRequest) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".AddFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.flightService.Add(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	return b.reloadSchedule(ctx)
}

func (b *Board) SaveFlight(ctx context.Context, req fltDto.UpdateFlightRequest, key flightModel.Key) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".SaveFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.flightService.Update(ctx, req, key); err != nil {
		return err //nolint:wrapcheck
	}

	return b.reloadSchedule(ctx)
}

func (b *Board) DeleteFlight(ctx context.Context, key flightModel.Key) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".DeleteFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.flightService.Delete(ctx, key); err != nil {
		return err //nolint:wrapcheck
	}

	return b.reloadSchedule(ctx)
}

func (b *Board) AddAircraft(ctx context.Context, req airDto.CreateAircraftRequest) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".AddAircraft")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.aircraftService.Add(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	return b.ReloadFleet(ctx)
}

// RegisterPassenger books a passenger and refreshes the schedule caches so
// the decremented seat count shows up immediately.
func (b *Board) RegisterPassenger(ctx context.Context, req paxDto.RegisterPassengerRequest) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".RegisterPassenger")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.passengerService.Register(ctx, req); err != nil {
		return err //nolint:wrapcheck
	}

	return b.reloadSchedule(ctx)
}

// ClearPassengers wipes every passenger record and resets every flight's seat
// count to the configured capacity.
func (b *Board) ClearPassengers(ctx context.Context) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".ClearPassengers")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.passengerService.Wipe(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	if err = b.flightService.ResetAllSeats(ctx, b.cfg.App.WipeResetSeats); err != nil {
		return err //nolint:wrapcheck
	}

	return b.reloadSchedule(ctx)
}

// ClearFlights wipes the schedule. Passenger records are left alone.
func (b *Board) ClearFlights(ctx context.Context) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".ClearFlights")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = b.flightService.Wipe(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	return b.reloadSchedule(ctx)
}

// SignIn authenticates the credentials and, on success, resolves and caches
// the display name for the signed-in operator.
func (b *Board) SignIn(ctx context.Context, req userDto.CredentialsRequest) (ok bool, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelBoardScopeName, constant.OtelBoardScopeName+".SignIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	ok, err = b.authService.Authenticate(ctx, req)
	if err != nil || !ok {
		return ok, err //nolint:wrapcheck
	}

	name, err := b.authService.DisplayName(ctx, req.Login)
	if err != nil {
		log.Warn().Err(err).Msg("signed in but failed to resolve display name")

		name = b.cfg.Auth.FallbackName
	}

	b.mu.Lock()
	b.userName = name
	b.mu.Unlock()

	return true, nil
}

// SignOut drops the cached operator name back to the guest placeholder.
func (b *Board) SignOut() {
	b.mu.Lock()
	b.userName = b.cfg.Auth.FallbackName
	b.mu.Unlock()
}

func (b *Board) reloadSchedule(ctx context.Context) error {
	if err := b.ReloadFlights(ctx, constant.Empty, true); err != nil {
		return err
	}

	return b.ReloadTimetable(ctx)
}
