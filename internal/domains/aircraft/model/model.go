package model

const (
	TableName  = "Aircrafts"
	EntityName = "aircraft"

	FieldModel           = "model"
	FieldCapacity        = "capacity"
	FieldLastMaintenance = "last_maintenance"
	FieldStatus          = "status"
)

// Aircraft mirrors one row of the Aircrafts table. The table carries no
// primary key; identity is synthetic and assigned per in-memory load.
type Aircraft struct {
	Model           string `db:"model"`
	Capacity        int    `db:"capacity"`
	LastMaintenance string `db:"last_maintenance"`
	Status          string `db:"status"`
}
