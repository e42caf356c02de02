package model

import (
	"cinema/shared/model"
	"time"
)

const (
	TableName  = "screenings"
	EntityName = "screening"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldMovieID   = "movie_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldPrice     = "price"
)

// CacheAvailableSeats prefixes the cached availability of a screening. Reservations and
// revisions drop the entry.
const CacheAvailableSeats = "screening:available"

type Screening struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	MovieID   string    `db:"movie_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Price     int       `db:"price"`
	model.Metadata
}
