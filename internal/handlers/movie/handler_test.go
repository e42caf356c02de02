package movie_test

import (
	"bytes"
	otelMocks "cinema/infras/otel/mocks"
	"cinema/internal/domains/movie/model/dto"
	movieMocks "cinema/internal/domains/movie/service/mocks"
	"cinema/internal/handlers/movie"
	"cinema/shared/failure"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const movieID = "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11"

func newRouter(t *testing.T) (*movieMocks.MockMovie, http.Handler) {
	t.Helper()

	service := movieMocks.NewMockMovie(gomock.NewController(t))
	handler := movie.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func posterBody(t *testing.T, field, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="poster"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte{0x1}, size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadPoster(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		contentType string
		size        int
		setup       func(m *movieMocks.MockMovie)
		wantCode    int
		wantBody    string
	}{
		{
			name:        "png uploaded",
			field:       "poster",
			contentType: "image/png",
			size:        512,
			setup: func(m *movieMocks.MockMovie) {
				m.EXPECT().UploadPoster(gomock.Any(), gomock.Any(), movieID).
					DoAndReturn(func(_ any, req dto.UploadPosterRequest, _ string) (dto.MovieResponse, error) {
						assert.Equal(t, "image/png", req.ContentType())

						return dto.MovieResponse{ID: movieID, PosterURL: "https://cdn.cinema.test/posters/" + movieID + ".png"}, nil
					})
			},
			wantCode: http.StatusOK,
			wantBody: `"poster_url":"https://cdn.cinema.test/posters/`,
		},
		{
			name:        "unsupported type",
			field:       "poster",
			contentType: "image/gif",
			size:        512,
			wantCode:    http.StatusBadRequest,
			wantBody:    `"field":"poster"`,
		},
		{
			name:        "wrong form field",
			field:       "image",
			contentType: "image/png",
			size:        512,
			wantCode:    http.StatusBadRequest,
			wantBody:    `"field":"poster"`,
		},
		{
			name:        "movie missing",
			field:       "poster",
			contentType: "image/jpeg",
			size:        512,
			setup: func(m *movieMocks.MockMovie) {
				m.EXPECT().UploadPoster(gomock.Any(), gomock.Any(), movieID).
					Return(dto.MovieResponse{}, failure.NotFound("movie not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := newRouter(t)
			if tt.setup != nil {
				tt.setup(service)
			}

			body, contentType := posterBody(t, tt.field, tt.contentType, tt.size)

			req := httptest.NewRequest(http.MethodPut, "/movies/"+movieID+"/poster", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestUploadPosterRejectsJSON(t *testing.T) {
	_, router := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/movies/"+movieID+"/poster", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateMovieInUse(t *testing.T) {
	service, router := newRouter(t)

	service.EXPECT().Update(gomock.Any(), dto.UpdateMovieRequest{Title: "Renamed"}, movieID).
		Return(dto.MovieResponse{}, failure.InUse("The movie cannot be updated while it is in screenings"))

	req := httptest.NewRequest(http.MethodPatch, "/movies/"+movieID, strings.NewReader(`{"title":"Renamed"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"in_use"`)
}
