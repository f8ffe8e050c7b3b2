package dto

import (
	"github.com/google/uuid"

	"flightdesk/internal/domains/aircraft/model"
)

type CreateAircraftRequest struct {
	Model           string `json:"model" validate:"required,max=64"`
	Capacity        int    `json:"capacity" validate:"gt=0"`
	LastMaintenance string `json:"last_maintenance" validate:"required,flightdate"`
	Status          string `json:"status" validate:"required,max=32"`
}

func (c *CreateAircraftRequest) ToModel() model.Aircraft {
	return model.Aircraft{
		Model:           c.Model,
		Capacity:        c.Capacity,
		LastMaintenance: c.LastMaintenance,
		Status:          c.Status,
	}
}

// AircraftResponse carries a synthetic ID so table views can address rows;
// the ID is assigned per load and never persisted.
type AircraftResponse struct {
	ID              string `json:"id"`
	Model           string `json:"model"`
	Capacity        int    `json:"capacity"`
	LastMaintenance string `json:"last_maintenance"`
	Status          string `json:"status"`
}

func (r *AircraftResponse) FromModel(model model.Aircraft) {
	r.ID = uuid.NewString()
	r.Model = model.Model
	r.Capacity = model.Capacity
	r.LastMaintenance = model.LastMaintenance
	r.Status = model.Status
}

func FromModels(models []model.Aircraft) []AircraftResponse {
	res := make([]AircraftResponse, 0, len(models))

	for _, m := range models {
		var one AircraftResponse
		one.FromModel(m)
		res = append(res, one)
	}

	return res
}
