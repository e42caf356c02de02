package room_test

import (
	otelMocks "cinema/infras/otel/mocks"
	"cinema/internal/domains/room/model/dto"
	roomMocks "cinema/internal/domains/room/service/mocks"
	seatDto "cinema/internal/domains/seat/model/dto"
	"cinema/internal/handlers/room"
	"cinema/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const roomID = "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11"

func newRouter(t *testing.T) (*roomMocks.MockRoom, http.Handler) {
	t.Helper()

	service := roomMocks.NewMockRoom(gomock.NewController(t))
	handler := room.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func TestCreateRoom(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *roomMocks.MockRoom)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			body: `{"name":"Red","rows_count":10,"seats_per_row_count":12}`,
			setup: func(m *roomMocks.MockRoom) {
				m.EXPECT().Create(gomock.Any(), dto.CreateRoomRequest{Name: "Red", RowsCount: 10, SeatsPerRowCount: 12}).
					Return(dto.RoomResponse{ID: roomID, Name: "Red", RowsCount: 10, SeatsPerRowCount: 12, Capacity: 120}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"capacity":120`,
		},
		{
			name:     "name too long",
			body:     `{"name":"` + strings.Repeat("r", 21) + `","rows_count":10,"seats_per_row_count":12}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"name"`,
		},
		{
			name:     "zero rows",
			body:     `{"name":"Red","rows_count":0,"seats_per_row_count":12}`,
			wantCode: http.StatusBadRequest,
			wantBody: `"field":"rows_count"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/rooms", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestDeleteRoomInUse(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().Delete(gomock.Any(), roomID).
		Return(failure.InUse("The room cannot be deleted while it is in screenings"))

	req := httptest.NewRequest(http.MethodDelete, "/rooms/"+roomID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"in_use"`)
}

func TestGetRoomSeats(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().Seats(gomock.Any(), roomID).Return(seatDto.SeatMapResponse{
		RoomID: roomID,
		Total:  2,
		Seats: []seatDto.SeatResponse{
			{ID: roomID + ":0:0", Row: 0, Number: 0},
			{ID: roomID + ":0:1", Row: 0, Number: 1},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/rooms/"+roomID+"/seats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
	assert.Contains(t, rec.Body.String(), `"id":"`+roomID+`:0:1"`)
}
