package model

import (
	seatModel "cinema/internal/domains/seat/model"
	"cinema/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldScreeningID = "screening_id"
	FieldRoomID      = "room_id"
	FieldSeatRow     = "seat_row"
	FieldSeatNumber  = "seat_number"
	FieldCreatedBy   = "created_by"
)

// Reservation holds one seat for one screening.
type Reservation struct {
	ID          string `db:"id"`
	ScreeningID string `db:"screening_id"`
	RoomID      string `db:"room_id"`
	SeatRow     int    `db:"seat_row"`
	SeatNumber  int    `db:"seat_number"`
	model.Metadata
}

func (r Reservation) Seat() seatModel.Seat {
	return seatModel.Seat{RoomID: r.RoomID, Row: r.SeatRow, Number: r.SeatNumber}
}

func Seats(reservations []Reservation) []seatModel.Seat {
	seats := make([]seatModel.Seat, len(reservations))
	for i, reservation := range reservations {
		seats[i] = reservation.Seat()
	}

	return seats
}
