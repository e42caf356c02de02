package reservation_test

import (
	otelMocks "cinema/infras/otel/mocks"
	"cinema/internal/domains/reservation/model/dto"
	reservationMocks "cinema/internal/domains/reservation/service/mocks"
	"cinema/internal/handlers/reservation"
	gDto "cinema/shared/dto"
	"cinema/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	roomID      = "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11"
	screeningID = "9c1d2e3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f"
)

func newRouter(t *testing.T) (*reservationMocks.MockReservation, http.Handler) {
	t.Helper()

	service := reservationMocks.NewMockReservation(gomock.NewController(t))
	handler := reservation.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *reservationMocks.MockReservation)
		wantCode int
		wantBody string
	}{
		{
			name: "reserved",
			body: `{"screening_id":"` + screeningID + `","seat_id":"` + roomID + `:0:9"}`,
			setup: func(m *reservationMocks.MockReservation) {
				m.EXPECT().Reserve(gomock.Any(), dto.CreateReservationRequest{ScreeningID: screeningID, SeatID: roomID + ":0:9"}).
					Return(dto.ReservationResponse{ID: "r-1", SeatID: roomID + ":0:9"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"id":"r-1"`,
		},
		{
			name: "seat already taken",
			body: `{"screening_id":"` + screeningID + `","seat_id":"` + roomID + `:0:9"}`,
			setup: func(m *reservationMocks.MockReservation) {
				m.EXPECT().Reserve(gomock.Any(), gomock.Any()).
					Return(dto.ReservationResponse{}, failure.Conflict(failure.KindAlreadyReserved, "Seat is already reserved for this screening."))
			},
			wantCode: http.StatusConflict,
			wantBody: `"kind":"already_reserved"`,
		},
		{
			name:     "malformed seat id",
			body:     `{"screening_id":"` + screeningID + `","seat_id":"A-9"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"seat_id"`,
		},
		{
			name:     "unknown field",
			body:     `{"screening_id":"` + screeningID + `","seat_id":"` + roomID + `:0:9","price":1}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			if tt.setup != nil {
				tt.setup(service)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

func TestGetReservations(t *testing.T) {
	t.Run("filters by screening", func(t *testing.T) {
		service, router := newRouter(t)
		service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error) {
				assert.Len(t, filter.Filters, 1)

				return dto.GetReservationsResponse{}, nil
			})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reservations?screening_id="+screeningID, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("rejects a malformed screening id", func(t *testing.T) {
		_, router := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/reservations?screening_id=nope", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCancelReservation(t *testing.T) {
	service, router := newRouter(t)
	service.EXPECT().Cancel(gomock.Any(), "r-1").Return(failure.NotFound("reservation not found"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/reservations/r-1", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
