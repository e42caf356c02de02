package dto

import (
	"cinema/internal/domains/room/model"
	"cinema/shared"
	gDto "cinema/shared/dto"
	gModel "cinema/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name             string `json:"name"                validate:"required,max=20"`
	RowsCount        int    `json:"rows_count"          validate:"required,gt=0,max=100"`
	SeatsPerRowCount int    `json:"seats_per_row_count" validate:"required,gt=0,max=100"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:               uuid.NewString(),
		Name:             c.Name,
		RowsCount:        c.RowsCount,
		SeatsPerRowCount: c.SeatsPerRowCount,
		Metadata:         gModel.NewMetadata(user),
	}
}

type UpdateRoomRequest struct {
	Name             string `db:"name"                json:"name"                validate:"omitempty,max=20"`
	RowsCount        *int   `db:"rows_count"          json:"rows_count"          validate:"omitempty,gt=0,max=100"`
	SeatsPerRowCount *int   `db:"seats_per_row_count" json:"seats_per_row_count" validate:"omitempty,gt=0,max=100"`
}

func (u *UpdateRoomRequest) Apply(room model.Room) model.Room {
	if u.Name != "" {
		room.Name = u.Name
	}

	if u.RowsCount != nil {
		room.RowsCount = *u.RowsCount
	}

	if u.SeatsPerRowCount != nil {
		room.SeatsPerRowCount = *u.SeatsPerRowCount
	}

	return room
}

type RoomResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	RowsCount        int    `json:"rows_count"`
	SeatsPerRowCount int    `json:"seats_per_row_count"`
	Capacity         int    `json:"capacity"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.RowsCount = model.RowsCount
	r.SeatsPerRowCount = model.SeatsPerRowCount
	r.Capacity = model.Capacity()
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
