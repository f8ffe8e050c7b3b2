package dto

import (
	"flightdesk/internal/domains/flight/model"
)

type CreateFlightRequest struct {
	FlightNumber     string `json:"flight_number" validate:"required,max=10"`
	DepartureAirport string `json:"airport_dep_id" validate:"required,max=5"`
	DepartureCity    string `json:"departure_from" validate:"required,max=64"`
	DepartureDate    string `json:"departure_date" validate:"required,flightdate"`
	DepartureTime    string `json:"departure_time" validate:"required,flightclock"`
	ArrivalAirport   string `json:"airport_arrival_id" validate:"required,max=5"`
	ArrivalCity      string `json:"arrival" validate:"required,max=64"`
	ArrivalDate      string `json:"arrival_date" validate:"required,flightdate"`
	ArrivalTime      string `json:"arrival_time" validate:"required,flightclock"`
	AvailableSeats   int    `json:"available_seats" validate:"gte=0"`
}

func (c *CreateFlightRequest) ToModel() model.Flight {
	return model.Flight{
		FlightNumber:     c.FlightNumber,
		DepartureAirport: c.DepartureAirport,
		DepartureCity:    c.DepartureCity,
		DepartureDate:    c.DepartureDate,
		DepartureTime:    c.DepartureTime,
		ArrivalAirport:   c.ArrivalAirport,
		ArrivalCity:      c.ArrivalCity,
		ArrivalDate:      c.ArrivalDate,
		ArrivalTime:      c.ArrivalTime,
		AvailableSeats:   c.AvailableSeats,
	}
}

// UpdateFlightRequest replaces every column of the row matched by the compound
// key; the key itself is immutable through this request.
type UpdateFlightRequest struct {
	DepartureAirport string `json:"airport_dep_id" validate:"required,max=5"`
	DepartureCity    string `json:"departure_from" validate:"required,max=64"`
	DepartureTime    string `json:"departure_time" validate:"required,flightclock"`
	ArrivalAirport   string `json:"airport_arrival_id" validate:"required,max=5"`
	ArrivalCity      string `json:"arrival" validate:"required,max=64"`
	ArrivalDate      string `json:"arrival_date" validate:"required,flightdate"`
	ArrivalTime      string `json:"arrival_time" validate:"required,flightclock"`
	AvailableSeats   int    `json:"available_seats" validate:"gte=0"`
}

// ToFields builds the full column map the store applies. Zero values are
// written out as-is: an edit that clears a field or sets seats to 0 must land.
func (u *UpdateFlightRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldDepartureAirport: u.DepartureAirport,
		model.FieldDepartureCity:    u.DepartureCity,
		model.FieldDepartureTime:    u.DepartureTime,
		model.FieldArrivalAirport:   u.ArrivalAirport,
		model.FieldArrivalCity:      u.ArrivalCity,
		model.FieldArrivalDate:      u.ArrivalDate,
		model.FieldArrivalTime:      u.ArrivalTime,
		model.FieldAvailableSeats:   u.AvailableSeats,
	}
}

type FlightResponse struct {
	FlightNumber     string `json:"flight_number"`
	DepartureAirport string `json:"airport_dep_id"`
	DepartureCity    string `json:"departure_from"`
	DepartureDate    string `json:"departure_date"`
	DepartureTime    string `json:"departure_time"`
	ArrivalAirport   string `json:"airport_arrival_id"`
	ArrivalCity      string `json:"arrival"`
	ArrivalDate      string `json:"arrival_date"`
	ArrivalTime      string `json:"arrival_time"`
	AvailableSeats   int    `json:"available_seats"`
}

func (r *FlightResponse) FromModel(model model.Flight) {
	r.FlightNumber = model.FlightNumber
	r.DepartureAirport = model.DepartureAirport
	r.DepartureCity = model.DepartureCity
	r.DepartureDate = model.DepartureDate
	r.DepartureTime = model.DepartureTime
	r.ArrivalAirport = model.ArrivalAirport
	r.ArrivalCity = model.ArrivalCity
	r.ArrivalDate = model.ArrivalDate
	r.ArrivalTime = model.ArrivalTime
	r.AvailableSeats = model.AvailableSeats
}

func FromModels(models []model.Flight) []FlightResponse {
	res := make([]FlightResponse, 0, len(models))

	for _, m := range models {
		var one FlightResponse
		one.FromModel(m)
		res = append(res, one)
	}

	return res
}
