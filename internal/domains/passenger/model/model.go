package model

const (
	TableName  = "Passengers"
	EntityName = "passenger"

	FieldID             = "id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldDateOfBirth    = "date_of_birth"
	FieldPassportNumber = "passport_number"
	FieldContactPhone   = "contact_phone"
	FieldFlightNumber   = "flight_number"
)

// Passenger mirrors one row of the Passengers table. The flight_number column
// is a soft reference: no foreign key, and deleting a flight leaves its
// passenger records in place.
type Passenger struct {
	ID             int64  `db:"id" insert:"false"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	DateOfBirth    string `db:"date_of_birth"`
	PassportNumber string `db:"passport_number"`
	ContactPhone   string `db:"contact_phone"`
	FlightNumber   string `db:"flight_number"`
}
