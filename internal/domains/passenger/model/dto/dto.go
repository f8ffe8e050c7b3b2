package dto

import (
	"flightdesk/internal/domains/passenger/model"
)

// RegisterPassengerRequest books one passenger onto a dated flight instance.
// The departure date locates the flight for the seat check; the stored
// passenger row references the flight number only.
type RegisterPassengerRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=64"`
	LastName       string `json:"last_name" validate:"required,max=64"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,flightdate"`
	PassportNumber string `json:"passport_number" validate:"required,max=16"`
	ContactPhone   string `json:"contact_phone" validate:"required,max=20"`
	FlightNumber   string `json:"flight_number" validate:"required,max=10"`
	DepartureDate  string `json:"departure_date" validate:"required,flightdate"`
}

func (c *RegisterPassengerRequest) ToModel() model.Passenger {
	return model.Passenger{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		DateOfBirth:    c.DateOfBirth,
		PassportNumber: c.PassportNumber,
		ContactPhone:   c.ContactPhone,
		FlightNumber:   c.FlightNumber,
	}
}

type PassengerResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	PassportNumber string `json:"passport_number"`
	ContactPhone   string `json:"contact_phone"`
	FlightNumber   string `json:"flight_number"`
}

func (r *PassengerResponse) FromModel(model model.Passenger) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.DateOfBirth = model.DateOfBirth
	r.PassportNumber = model.PassportNumber
	r.ContactPhone = model.ContactPhone
	r.FlightNumber = model.FlightNumber
}

func FromModels(models []model.Passenger) []PassengerResponse {
	res := make([]PassengerResponse, 0, len(models))

	for _, m := range models {
		var one PassengerResponse
		one.FromModel(m)
		res = append(res, one)
	}

	return res
}
