package service_test

import (
	"cinema/config"
	"cinema/infras/otel/mocks"
	"cinema/infras/postgres"
	s3Mocks "cinema/infras/s3/mocks"
	movieMocks "cinema/internal/domains/movie/mocks"
	"cinema/internal/domains/movie/model"
	"cinema/internal/domains/movie/model/dto"
	"cinema/internal/domains/movie/service"
	screeningMocks "cinema/internal/domains/screening/mocks"
	cacheMocks "cinema/shared/cache/mocks"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	"cinema/shared/failure"
	gRepo "cinema/shared/repository"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const movieID = "0b6e0d2e-52a4-4f3a-9a4f-2b0f3a8c1d11"

func setup(t *testing.T) (*movieMocks.MockMovie, *screeningMocks.MockScreening, *cacheMocks.MockRedisCache, service.Movie) {
	t.Helper()

	mockRepo, mockScreenings, mockCache, _, svc := setupWithStorage(t)

	return mockRepo, mockScreenings, mockCache, svc
}

func setupWithStorage(t *testing.T) (*movieMocks.MockMovie, *screeningMocks.MockScreening, *cacheMocks.MockRedisCache, *s3Mocks.MockS3, service.Movie) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := movieMocks.NewMockMovie(ctrl)
	mockScreenings := screeningMocks.NewMockScreening(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockScreenings, cfg, mockCache, mockStorage, mocks.NewOtel())

	return mockRepo, mockScreenings, mockCache, mockStorage, svc
}

func runInTransaction(_ context.Context, fn postgres.TxFunc) error {
	return fn(nil)
}

func TestMovieService_Create(t *testing.T) {
	mockRepo, _, mockCache, svc := setup(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "movie:gets:*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "movie:count:*").Return(errors.New("redis down"))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
	res, err := svc.Create(ctx, dto.CreateMovieRequest{Title: "Harry Potter", DurationMinutes: 125})

	require.NoError(t, err, "cache failures must not fail the write")
	assert.Equal(t, "Harry Potter", res.Title)
	assert.Equal(t, 125, res.DurationMinutes)
	assert.Equal(t, "staff-1", res.CreatedBy)
}

func TestMovieService_Get(t *testing.T) {
	mockRepo, _, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), "movie:get:"+movieID, gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Movie{}, nil)

	_, err := svc.Get(context.Background(), movieID)

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestMovieService_Guards(t *testing.T) {
	title := "Renamed"

	tests := []struct {
		name    string
		run     func(svc service.Movie) error
		wantMsg string
	}{
		{
			name: "update",
			run: func(svc service.Movie) error {
				_, err := svc.Update(context.Background(), dto.UpdateMovieRequest{Title: title}, movieID)

				return err
			},
			wantMsg: "The movie cannot be updated while it is in screenings",
		},
		{
			name: "delete",
			run: func(svc service.Movie) error {
				return svc.Delete(context.Background(), movieID)
			},
			wantMsg: "The movie cannot be deleted while it is in screenings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, mockScreenings, _, svc := setup(t)

			mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTransaction)
			mockRepo.EXPECT().
				GetTx(gomock.Any(), gomock.Any(), gRepo.LockForUpdate, gomock.Any()).
				Return(model.Movie{ID: movieID, Title: "Harry Potter", DurationMinutes: 125}, nil)
			mockScreenings.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)

			err := tt.run(svc)

			require.Error(t, err)
			assert.True(t, failure.IsKind(err, failure.KindInUse))
			assert.Equal(t, 400, failure.GetCode(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestMovieService_Update(t *testing.T) {
	mockRepo, mockScreenings, mockCache, svc := setup(t)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTransaction)
	mockRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gRepo.LockForUpdate, gomock.Any()).
		Return(model.Movie{ID: movieID, Title: "Harry Potter", DurationMinutes: 125}, nil)
	mockScreenings.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
	mockRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), "movie:get:"+movieID).Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := svc.Update(context.Background(), dto.UpdateMovieRequest{Title: "Renamed"}, movieID)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", res.Title)
	assert.Equal(t, 125, res.DurationMinutes)
}

func TestMovieService_DeleteMissing(t *testing.T) {
	mockRepo, _, _, svc := setup(t)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTransaction)
	mockRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gRepo.LockForUpdate, gomock.Any()).Return(model.Movie{}, nil)

	err := svc.Delete(context.Background(), movieID)

	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestMovieService_DeleteAfterScreeningRemoved(t *testing.T) {
	mockRepo, mockScreenings, mockCache, svc := setup(t)

	mockRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTransaction).Times(2)
	mockRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gRepo.LockForUpdate, gomock.Any()).
		Return(model.Movie{ID: movieID, DurationMinutes: 125}, nil).
		Times(2)

	gomock.InOrder(
		mockScreenings.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil),
		mockScreenings.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil),
	)

	mockRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	err := svc.Delete(context.Background(), movieID)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindInUse))

	assert.NoError(t, svc.Delete(context.Background(), movieID))
}

func posterRequest(contentType string) dto.UploadPosterRequest {
	return dto.UploadPosterRequest{
		Poster: &multipart.FileHeader{
			Filename: "poster",
			Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
			Size:     1024,
		},
		PosterFile: nil,
	}
}

func TestMovieService_UploadPoster(t *testing.T) {
	const (
		oldURL = "https://cdn.cinema.test/posters/" + movieID + ".png"
		newURL = "https://cdn.cinema.test/posters/" + movieID + ".jpg"
	)

	tests := []struct {
		name       string
		current    model.Movie
		setupMocks func(repo *movieMocks.MockMovie, cache *cacheMocks.MockRedisCache, storage *s3Mocks.MockS3)
		wantURL    string
		wantKind   failure.Kind
		wantErr    bool
	}{
		{
			name:    "replaces a poster of another type",
			current: model.Movie{ID: movieID, Title: "Harry Potter", DurationMinutes: 125, PosterURL: oldURL},
			setupMocks: func(repo *movieMocks.MockMovie, cache *cacheMocks.MockRedisCache, storage *s3Mocks.MockS3) {
				storage.EXPECT().KeyFromURL(oldURL).Return("posters/" + movieID + ".png")
				storage.EXPECT().Upload(gomock.Any(), "posters/"+movieID+".jpg", "image/jpeg", gomock.Any()).Return(newURL, nil)
				repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTransaction)
				repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gRepo.LockForUpdate, gomock.Any()).
					Return(model.Movie{ID: movieID, Title: "Harry Potter", DurationMinutes: 125, PosterURL: oldURL}, nil)
				repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, newURL, fields[model.FieldPosterURL])
						assert.Equal(t, "staff-1", fields[constant.FieldModifiedBy])

						return nil
					})
				storage.EXPECT().Delete(gomock.Any(), "posters/"+movieID+".png").Return(nil)
				cache.EXPECT().Delete(gomock.Any(), "movie:get:"+movieID).Return(nil)
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			wantURL: newURL,
		},
		{
			name:    "movie not found",
			current: model.Movie{},
			setupMocks: func(_ *movieMocks.MockMovie, _ *cacheMocks.MockRedisCache, _ *s3Mocks.MockS3) {
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name:    "upload failure leaves the movie untouched",
			current: model.Movie{ID: movieID, DurationMinutes: 125},
			setupMocks: func(_ *movieMocks.MockMovie, _ *cacheMocks.MockRedisCache, storage *s3Mocks.MockS3) {
				storage.EXPECT().KeyFromURL("").Return("")
				storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable"))
			},
			wantErr: true,
		},
		{
			name:    "movie deleted during upload removes the new object",
			current: model.Movie{ID: movieID, DurationMinutes: 125},
			setupMocks: func(repo *movieMocks.MockMovie, _ *cacheMocks.MockRedisCache, storage *s3Mocks.MockS3) {
				storage.EXPECT().KeyFromURL("").Return("")
				storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(newURL, nil)
				repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTransaction)
				repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gRepo.LockForUpdate, gomock.Any()).Return(model.Movie{}, nil)
				storage.EXPECT().Delete(gomock.Any(), "posters/"+movieID+".jpg").Return(nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, _, mockCache, mockStorage, svc := setupWithStorage(t)

			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.current, nil)
			tt.setupMocks(mockRepo, mockCache, mockStorage)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			res, err := svc.UploadPoster(ctx, posterRequest("image/jpeg"), movieID)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.PosterURL)
			assert.Equal(t, "Harry Potter", res.Title)
		})
	}
}

func TestUploadPosterRequest_ObjectKey(t *testing.T) {
	assert.Equal(t, "posters/"+movieID+".png", posterRequest("image/png").ObjectKey(movieID))
	assert.Equal(t, "posters/"+movieID+".jpg", posterRequest("image/jpeg").ObjectKey(movieID))
	assert.True(t, strings.HasPrefix(posterRequest("image/jpeg").ObjectKey(movieID), model.PosterDirectory))
}
