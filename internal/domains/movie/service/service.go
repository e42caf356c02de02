package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cinema/config"
	"cinema/infras/otel"
	"cinema/infras/s3"
	"cinema/internal/domains/movie/model"
	"cinema/internal/domains/movie/model/dto"
	"cinema/internal/domains/movie/repository"
	screeningModel "cinema/internal/domains/screening/model"
	screeningRepo "cinema/internal/domains/screening/repository"
	"cinema/shared"
	"cinema/shared/cache"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	"cinema/shared/failure"
	gRepo "cinema/shared/repository"
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetMovie    = "movie:get"
	cacheGetAllMovie = "movie:gets"
	cacheCountMovie  = "movie:count"
)

const (
	msgMovieNotFound    = "movie not found"
	msgMovieUpdateInUse = "The movie cannot be updated while it is in screenings"
	msgMovieDeleteInUse = "The movie cannot be deleted while it is in screenings"
)

type Movie interface {
	Create(ctx context.Context, req dto.CreateMovieRequest) (dto.MovieResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMoviesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MovieResponse, error)
	Update(ctx context.Context, req dto.UpdateMovieRequest, id string) (dto.MovieResponse, error)
	Delete(ctx context.Context, id string) error
	UploadPoster(ctx context.Context, req dto.UploadPosterRequest, id string) (dto.MovieResponse, error)
}

type serviceImpl struct {
	repo       repository.Movie
	screenings screeningRepo.Screening
	cfg        *config.Config
	cache      cache.RedisCache
	storage    s3.S3
	otel       otel.Otel
}

func New(repo repository.Movie, screenings screeningRepo.Screening, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) Movie {
	return &serviceImpl{
		repo:       repo,
		screenings: screenings,
		cfg:        cfg,
		cache:      cache,
		storage:    storage,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMovieRequest) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	movie := req.ToModel(user)

	if err = s.repo.Insert(ctx, movie); err != nil {
		log.Error().Err(err).Msg("failed to create movie")

		return res, fmt.Errorf("failed to create movie: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllMovie)
	shared.InvalidateCaches(ctx, s.cache, cacheCountMovie)

	res.FromModel(movie)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMoviesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMovie, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for movies")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get movies")

		return res, fmt.Errorf("failed to get movies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save movies to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMovie, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count movies")

		return res, fmt.Errorf("failed to count movies: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save movie count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetMovie, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for movie")

		return res, nil
	}

	movie, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get movie")

		return res, fmt.Errorf("failed to get movie: %w", err)
	}

	if movie.ID == constant.Empty {
		return res, failure.NotFound(msgMovieNotFound) // nolint:wrapcheck
	}

	res.FromModel(movie)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save movie to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMovieRequest, id string) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var updated model.Movie

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		movie, err := s.lockUnused(ctx, tx, id, msgMovieUpdateInUse)
		if err != nil {
			return err
		}

		updated = req.Apply(movie)

		return s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return res, guardError(err, msgMovieUpdateInUse, "failed to update movie")
	}

	s.invalidate(ctx, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.lockUnused(ctx, tx, id, msgMovieDeleteInUse); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return guardError(err, msgMovieDeleteInUse, "failed to delete movie")
	}

	s.invalidate(ctx, id)

	return nil
}

// UploadPoster stores the image and points the movie at it. Posters are not part of scheduling, so
// a movie with screenings may still change its poster.
func (s *serviceImpl) UploadPoster(ctx context.Context, req dto.UploadPosterRequest, id string) (res dto.MovieResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".movie.UploadPoster")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	movie, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get movie")

		return res, fmt.Errorf("failed to get movie: %w", err)
	}

	if movie.ID == constant.Empty {
		return res, failure.NotFound(msgMovieNotFound) // nolint:wrapcheck
	}

	key := req.ObjectKey(id)
	previous := s.storage.KeyFromURL(movie.PosterURL)

	url, err := s.storage.Upload(ctx, key, req.ContentType(), req.PosterFile)
	if err != nil {
		return res, fmt.Errorf("failed to upload poster: %w", err)
	}

	var updated model.Movie

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetTx(ctx, tx, gRepo.LockForUpdate, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock movie: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgMovieNotFound)
		}

		updated = current
		updated.PosterURL = url

		return s.repo.UpdateTx(ctx, tx, shared.TransformFields(dto.UpdatePosterRequest{PosterURL: url}, user),
			shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		if key != previous {
			s.removePoster(ctx, key)
		}

		return res, guardError(err, msgMovieUpdateInUse, "failed to update movie poster")
	}

	if previous != constant.Empty && previous != key {
		s.removePoster(ctx, previous)
	}

	s.invalidate(ctx, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) removePoster(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to remove poster")
	}
}

// lockUnused takes the movie row FOR UPDATE. Scheduling holds it FOR SHARE, so the screening
// count below cannot change until this transaction ends.
func (s *serviceImpl) lockUnused(ctx context.Context, tx *sqlx.Tx, id, inUseMsg string) (model.Movie, error) {
	movie, err := s.repo.GetTx(ctx, tx, gRepo.LockForUpdate, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return movie, fmt.Errorf("failed to lock movie: %w", err)
	}

	if movie.ID == constant.Empty {
		return movie, failure.NotFound(msgMovieNotFound)
	}

	total, err := s.screenings.CountTx(ctx, tx, shared.FilterByID(id, screeningModel.FieldMovieID, screeningModel.TableName))
	if err != nil {
		return movie, fmt.Errorf("failed to count movie screenings: %w", err)
	}

	if total > 0 {
		return movie, failure.InUse(inUseMsg)
	}

	return movie, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetMovie, id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete movie from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllMovie)
	shared.InvalidateCaches(ctx, s.cache, cacheCountMovie)
}

func guardError(err error, inUseMsg, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, gRepo.ErrForeignKeyViolation) {
		return failure.InUse(inUseMsg)
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}
