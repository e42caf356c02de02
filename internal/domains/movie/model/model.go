package model

import (
	"cinema/shared/model"
	"time"
)

const (
	TableName  = "movies"
	EntityName = "movie"

	FieldID              = "id"
	FieldTitle           = "title"
	FieldDurationMinutes = "duration_minutes"
	FieldPosterURL       = "poster_url"

	PosterDirectory = "posters"
)

const (
	MinDurationMinutes = 10
	MaxDurationMinutes = 500
)

type Movie struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	DurationMinutes int    `db:"duration_minutes"`
	PosterURL       string `db:"poster_url"`
	model.Metadata
}

func (m Movie) Duration() time.Duration {
	return time.Duration(m.DurationMinutes) * time.Minute
}
