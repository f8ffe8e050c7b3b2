package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"flightdesk/infras/otel"
	flightMocks "flightdesk/internal/domains/flight/mocks"
	flightModel "flightdesk/internal/domains/flight/model"
	"flightdesk/internal/domains/passenger/mocks"
	"flightdesk/internal/domains/passenger/model"
	"flightdesk/internal/domains/passenger/model/dto"
	"flightdesk/internal/domains/passenger/service"
	"flightdesk/shared/failure"
)

func validRegisterRequest() dto.RegisterPassengerRequest {
	return dto.RegisterPassengerRequest{
		FirstName:      "Anna",
		LastName:       "Petrova",
		DateOfBirth:    "1990-04-12",
		PassportNumber: "4509123456",
		ContactPhone:   "+7 915 000-00-00",
		FlightNumber:   "SU100",
		DepartureDate:  "2026-09-01",
	}
}

func TestPassengerService_Register(t *testing.T) {
	scheduledFlight := flightModel.Flight{
		FlightNumber:   "SU100",
		DepartureDate:  "2026-09-01",
		AvailableSeats: 3,
	}

	tests := []struct {
		name      string
		req       dto.RegisterPassengerRequest
		setupMock func(repo *mocks.MockPassenger, flights *flightMocks.MockFlight)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "books a seat and decrements the count",
			req:  validRegisterRequest(),
			setupMock: func(repo *mocks.MockPassenger, flights *flightMocks.MockFlight) {
				flights.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduledFlight, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				flights.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, 2, fields[flightModel.FieldAvailableSeats])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown flight is a not found failure",
			req:  validRegisterRequest(),
			setupMock: func(repo *mocks.MockPassenger, flights *flightMocks.MockFlight) {
				flights.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(flightModel.Flight{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "sold out flight refuses the booking",
			req:  validRegisterRequest(),
			setupMock: func(repo *mocks.MockPassenger, flights *flightMocks.MockFlight) {
				soldOut := scheduledFlight
				soldOut.AvailableSeats = 0

				flights.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(soldOut, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "missing passport is rejected before any lookup",
			req: func() dto.RegisterPassengerRequest {
				req := validRegisterRequest()
				req.PassportNumber = ""

				return req
			}(),
			setupMock: func(repo *mocks.MockPassenger, flights *flightMocks.MockFlight) {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPassenger(ctrl)
			mockFlights := flightMocks.NewMockFlight(ctrl)
			svc := service.New(mockRepo, mockFlights, otel.NewNoop())

			tt.setupMock(mockRepo, mockFlights)

			err := svc.Register(context.Background(), tt.req)

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

func TestPassengerService_ListByFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassenger(ctrl)
	mockFlights := flightMocks.NewMockFlight(ctrl)
	svc := service.New(mockRepo, mockFlights, otel.NewNoop())

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Passenger{
			{ID: 1, FirstName: "Anna", LastName: "Petrova", FlightNumber: "SU100"},
		}, nil)

	res, err := svc.ListByFlight(context.Background(), "SU100")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Anna", res[0].FirstName)
}

func TestPassengerService_Wipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPassenger(ctrl)
	mockFlights := flightMocks.NewMockFlight(ctrl)
	svc := service.New(mockRepo, mockFlights, otel.NewNoop())

	mockRepo.EXPECT().
		DeleteAll(gomock.Any()).
		Return(nil)

	assert.NoError(t, svc.Wipe(context.Background()))
}
