package model

import "cinema/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID               = "id"
	FieldName             = "name"
	FieldRowsCount        = "rows_count"
	FieldSeatsPerRowCount = "seats_per_row_count"
)

// Room is a rectangular grid of seats.
type Room struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	RowsCount        int    `db:"rows_count"`
	SeatsPerRowCount int    `db:"seats_per_row_count"`
	model.Metadata
}

func (r Room) Capacity() int {
	return r.RowsCount * r.SeatsPerRowCount
}
