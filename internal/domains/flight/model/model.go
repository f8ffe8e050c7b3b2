package model

const (
	TableName  = "Flights"
	EntityName = "flight"

	FieldFlightNumber     = "flight_number"
	FieldDepartureAirport = "airport_dep_id"
	FieldDepartureCity    = "departure_from"
	FieldDepartureDate    = "departure_date"
	FieldDepartureTime    = "departure_time"
	FieldArrivalAirport   = "airport_arrival_id"
	FieldArrivalCity      = "arrival"
	FieldArrivalDate      = "arrival_date"
	FieldArrivalTime      = "arrival_time"
	FieldAvailableSeats   = "available_seats"
)

// Flight mirrors one row of the Flights table. Dates and times are stored as
// plain strings (yyyy-MM-dd and HH:mm) exactly as entered.
type Flight struct {
	FlightNumber     string `db:"flight_number"`
	DepartureAirport string `db:"airport_dep_id"`
	DepartureCity    string `db:"departure_from"`
	DepartureDate    string `db:"departure_date"`
	DepartureTime    string `db:"departure_time"`
	ArrivalAirport   string `db:"airport_arrival_id"`
	ArrivalCity      string `db:"arrival"`
	ArrivalDate      string `db:"arrival_date"`
	ArrivalTime      string `db:"arrival_time"`
	AvailableSeats   int    `db:"available_seats"`
}

// Key identifies a dated flight instance. Flight numbers repeat across dates,
// so every lookup, update and delete matches on the pair.
type Key struct {
	FlightNumber  string `validate:"required"`
	DepartureDate string `validate:"required,flightdate"`
}
