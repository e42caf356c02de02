package screening_test

import (
	otelMocks "cinema/infras/otel/mocks"
	reservationMocks "cinema/internal/domains/reservation/service/mocks"
	"cinema/internal/domains/screening/model/dto"
	screeningMocks "cinema/internal/domains/screening/service/mocks"
	seatDto "cinema/internal/domains/seat/model/dto"
	"cinema/internal/handlers/screening"
	gDto "cinema/shared/dto"
	"cinema/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	roomID      = "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11"
	movieID     = "5f0c7c1e-8a8d-4f4e-9d47-0c7c1e8a8d4f"
	screeningID = "9c1d2e3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f"
)

type fixture struct {
	screenings   *screeningMocks.MockScreening
	reservations *reservationMocks.MockReservation
	router       http.Handler
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		screenings:   screeningMocks.NewMockScreening(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
	}

	handler := screening.New(f.screenings, f.reservations, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	f.router = router

	return f
}

func serve(f fixture, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestProposeScreening(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setup     func(f fixture)
		wantCode  int
		wantKind  string
		wantField string
	}{
		{
			name: "scheduled",
			body: `{"room_id":"` + roomID + `","movie_id":"` + movieID + `","start_time":"2024-05-10T10:00:00+07:00","price":100}`,
			setup: func(f fixture) {
				f.screenings.EXPECT().Propose(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req dto.CreateScreeningRequest) (dto.ScreeningResponse, error) {
						assert.Equal(t, 100, req.Price)
						assert.Equal(t, 10, req.StartTime.Hour())

						return dto.ScreeningResponse{ID: screeningID}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "room id must be a uuid",
			body:      `{"room_id":"hall-1","movie_id":"` + movieID + `","start_time":"2024-05-10T10:00:00+07:00","price":100}`,
			wantCode:  http.StatusBadRequest,
			wantField: "room_id",
		},
		{
			name: "overlap is reported with its kind",
			body: `{"room_id":"` + roomID + `","movie_id":"` + movieID + `","start_time":"2024-05-10T10:00:00+07:00","price":100}`,
			setup: func(f fixture) {
				f.screenings.EXPECT().Propose(gomock.Any(), gomock.Any()).
					Return(dto.ScreeningResponse{}, failure.FieldError(failure.KindOverlap, "start_time", "Screenings should not intersect."))
			},
			wantCode:  http.StatusBadRequest,
			wantKind:  "overlap",
			wantField: "start_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			recorder := serve(f, http.MethodPost, "/screenings", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode >= http.StatusBadRequest {
				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, body["kind"])
				}

				assert.Equal(t, tt.wantField, body["field"])
			}
		})
	}
}

func TestGetScreeningsFilter(t *testing.T) {
	t.Run("builds filters and whitelists sorting", func(t *testing.T) {
		f := setup(t)
		f.screenings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetScreeningsResponse, error) {
				assert.Equal(t, "start_time", params.SortBy)
				assert.Len(t, filter.Filters, 3)

				return dto.GetScreeningsResponse{}, nil
			})

		recorder := serve(f, http.MethodGet, "/screenings?room_id="+roomID+"&date=2024-05-10&sort_by=price;drop", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := setup(t)

		recorder := serve(f, http.MethodGet, "/screenings?date=10-05-2024", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetAvailableSeats(t *testing.T) {
	f := setup(t)
	f.reservations.EXPECT().AvailableSeats(gomock.Any(), screeningID).Return(seatDto.AvailableSeatsResponse{
		ScreeningID: screeningID,
		RoomID:      roomID,
		Total:       2,
		Available:   1,
		Seats:       []seatDto.SeatResponse{{ID: roomID + ":0:1", Row: 0, Number: 1}},
	}, nil)

	recorder := serve(f, http.MethodGet, "/screenings/"+screeningID+"/available-seats", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data seatDto.AvailableSeatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Available)
	assert.Equal(t, roomID+":0:1", body.Data.Seats[0].ID)
}

func TestDeleteScreeningInUse(t *testing.T) {
	f := setup(t)
	f.screenings.EXPECT().Delete(gomock.Any(), screeningID).
		Return(failure.InUse("The screening cannot be deleted while it has reservations"))

	recorder := serve(f, http.MethodDelete, "/screenings/"+screeningID, "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"kind":"in_use"`)
}
