package dto

import (
	"cinema/internal/domains/reservation/model"
	seatModel "cinema/internal/domains/seat/model"
	"cinema/shared"
	gDto "cinema/shared/dto"
	gModel "cinema/shared/model"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ScreeningID string `json:"screening_id" validate:"required,uuid"`
	SeatID      string `json:"seat_id"      validate:"required,seat_id"`
}

func ToModel(screeningID string, seat seatModel.Seat, user string) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		ScreeningID: screeningID,
		RoomID:      seat.RoomID,
		SeatRow:     seat.Row,
		SeatNumber:  seat.Number,
		Metadata:    gModel.NewMetadata(user),
	}
}

type ReservationResponse struct {
	ID          string `json:"id"`
	ScreeningID string `json:"screening_id"`
	SeatID      string `json:"seat_id"`
	Row         int    `json:"row"`
	Number      int    `json:"number"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.ScreeningID = model.ScreeningID
	r.SeatID = model.Seat().ID()
	r.Row = model.SeatRow
	r.Number = model.SeatNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
