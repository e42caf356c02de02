package dto

import (
	"cinema/internal/domains/movie/model"
	"cinema/shared"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	gModel "cinema/shared/model"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
)

type CreateMovieRequest struct {
	Title           string `json:"title"            validate:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=10,max=500"`
}

func (c *CreateMovieRequest) ToModel(user string) model.Movie {
	return model.Movie{
		ID:              uuid.NewString(),
		Title:           c.Title,
		DurationMinutes: c.DurationMinutes,
		Metadata:        gModel.NewMetadata(user),
	}
}

type UpdateMovieRequest struct {
	Title           string `db:"title"            json:"title"            validate:"omitempty,max=100"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=10,max=500"`
}

func (u *UpdateMovieRequest) Apply(movie model.Movie) model.Movie {
	if u.Title != "" {
		movie.Title = u.Title
	}

	if u.DurationMinutes != 0 {
		movie.DurationMinutes = u.DurationMinutes
	}

	return movie
}

var posterExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

type UploadPosterRequest struct {
	Poster     *multipart.FileHeader `json:"poster" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
	PosterFile multipart.File        `json:"-"`
}

func (u *UploadPosterRequest) ContentType() string {
	return u.Poster.Header.Get(constant.RequestHeaderContentType)
}

// ObjectKey names the stored poster after the movie, so a new upload of the same type replaces the old object.
func (u *UploadPosterRequest) ObjectKey(movieID string) string {
	return path.Join(model.PosterDirectory, movieID+posterExtensions[u.ContentType()])
}

type UpdatePosterRequest struct {
	PosterURL string `db:"poster_url"`
}

type MovieResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	PosterURL       string `json:"poster_url,omitempty"`
	gDto.Metadata
}

func (r *MovieResponse) FromModel(model model.Movie) {
	r.ID = model.ID
	r.Title = model.Title
	r.DurationMinutes = model.DurationMinutes
	r.PosterURL = model.PosterURL
	r.Metadata.FromModel(model.Metadata)
}

type GetMoviesResponse struct {
	Movies    []MovieResponse `json:"movies"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetMoviesResponse) FromModels(models []model.Movie, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Movies = make([]MovieResponse, len(models))
	for i, mod := range models {
		r.Movies[i].FromModel(mod)
	}
}
