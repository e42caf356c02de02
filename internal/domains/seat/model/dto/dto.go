package dto

import "cinema/internal/domains/seat/model"

type SeatResponse struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	Number int    `json:"number"`
}

func (r *SeatResponse) FromModel(seat model.Seat) {
	r.ID = seat.ID()
	r.Row = seat.Row
	r.Number = seat.Number
}

func FromModels(seats []model.Seat) []SeatResponse {
	res := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		res[i].FromModel(seat)
	}

	return res
}

type SeatMapResponse struct {
	RoomID string         `json:"room_id"`
	Total  int            `json:"total"`
	Seats  []SeatResponse `json:"seats"`
}

type AvailableSeatsResponse struct {
	ScreeningID string         `json:"screening_id"`
	RoomID      string         `json:"room_id"`
	Total       int            `json:"total"`
	Available   int            `json:"available"`
	Seats       []SeatResponse `json:"seats"`
}
