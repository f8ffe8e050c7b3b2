package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"flightdesk/infras/otel"
	"flightdesk/internal/domains/aircraft/mocks"
	"flightdesk/internal/domains/aircraft/model"
	"flightdesk/internal/domains/aircraft/model/dto"
	"flightdesk/internal/domains/aircraft/service"
	"flightdesk/shared/failure"
)

func TestAircraftService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAircraft(ctrl)
	svc := service.New(mockRepo, otel.NewNoop())

	tests := []struct {
		name      string
		req       dto.CreateAircraftRequest
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			req: dto.CreateAircraftRequest{
				Model:           "Airbus A320neo",
				Capacity:        180,
				LastMaintenance: "2026-07-14",
				Status:          "in service",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "zero capacity is rejected",
			req: dto.CreateAircraftRequest{
				Model:           "Airbus A320neo",
				Capacity:        0,
				LastMaintenance: "2026-07-14",
				Status:          "in service",
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "repository error",
			req: dto.CreateAircraftRequest{
				Model:           "Airbus A320neo",
				Capacity:        180,
				LastMaintenance: "2026-07-14",
				Status:          "in service",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Add(context.Background(), tt.req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantKind != "" {
				assert.True(t, failure.IsKind(err, tt.wantKind))
			}
		})
	}
}

func TestAircraftService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAircraft(ctrl)
	svc := service.New(mockRepo, otel.NewNoop())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Aircraft{
			{Model: "Airbus A320neo", Capacity: 180},
			{Model: "Boeing 777-300ER", Capacity: 402},
		}, nil)

	res, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)

	// Synthetic identity is assigned per load and must be unique within it.
	assert.NotEmpty(t, res[0].ID)
	assert.NotEmpty(t, res[1].ID)
	assert.NotEqual(t, res[0].ID, res[1].ID)
}
