package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cinema/config"
	"cinema/infras/otel"
	movieModel "cinema/internal/domains/movie/model"
	movieRepo "cinema/internal/domains/movie/repository"
	reservationModel "cinema/internal/domains/reservation/model"
	reservationRepo "cinema/internal/domains/reservation/repository"
	roomModel "cinema/internal/domains/room/model"
	roomRepo "cinema/internal/domains/room/repository"
	"cinema/internal/domains/screening/model"
	"cinema/internal/domains/screening/model/dto"
	"cinema/internal/domains/screening/repository"
	"cinema/internal/domains/screening/schedule"
	"cinema/shared"
	"cinema/shared/cache"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	"cinema/shared/event"
	"cinema/shared/failure"
	gRepo "cinema/shared/repository"
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetScreening    = "screening:get"
	cacheGetAllScreening = "screening:gets"
	cacheCountScreening  = "screening:count"
)

const (
	msgScreeningNotFound     = "screening not found"
	msgMovieNotFound         = "movie not found"
	msgRoomNotFound          = "room not found"
	msgScreeningDeleteInUse  = "The screening cannot be deleted while it has reservations"
	msgScreeningRoomReserved = "The screening room cannot be changed while it has reservations"
)

type Screening interface {
	Propose(ctx context.Context, req dto.CreateScreeningRequest) (dto.ScreeningResponse, error)
	Revise(ctx context.Context, req dto.UpdateScreeningRequest, id string) (dto.ScreeningResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetScreeningsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ScreeningResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Screening
	rooms        roomRepo.Room
	movies       movieRepo.Movie
	reservations reservationRepo.Reservation
	publisher    event.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Screening,
	rooms roomRepo.Room,
	movies movieRepo.Movie,
	reservations reservationRepo.Reservation,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Screening {
	return &serviceImpl{
		repo:         repo,
		rooms:        rooms,
		movies:       movies,
		reservations: reservations,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Propose schedules a new screening. The movie row is held FOR SHARE and the room row FOR UPDATE
// until the insert commits, so concurrent proposals for one room are checked one after another.
func (s *serviceImpl) Propose(ctx context.Context, req dto.CreateScreeningRequest) (res dto.ScreeningResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".screening.Propose")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	screening := req.ToModel(user)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.checkSlot(ctx, tx, &screening, constant.Empty); err != nil {
			return err
		}

		return s.repo.InsertTx(ctx, tx, screening)
	})
	if err != nil {
		return res, scheduleError(err, "failed to propose screening")
	}

	s.invalidateLists(ctx)

	res.FromModel(screening)
	s.publish(ctx, res)

	return res, nil
}

// Revise merges the present fields over the stored screening and schedules the result again.
// Moving a screening that already has reservations to another room is rejected.
func (s *serviceImpl) Revise(ctx context.Context, req dto.UpdateScreeningRequest, id string) (res dto.ScreeningResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".screening.Revise")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var revised model.Screening

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetTx(ctx, tx, gRepo.LockForUpdate, filter)
		if err != nil {
			return fmt.Errorf("failed to lock screening: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgScreeningNotFound)
		}

		if req.RoomID != nil && *req.RoomID != current.RoomID {
			if err := s.ensureNoReservations(ctx, tx, id, msgScreeningRoomReserved); err != nil {
				return err
			}
		}

		revised = req.Apply(current, user)

		if err := s.checkSlot(ctx, tx, &revised, id); err != nil {
			return err
		}

		return s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldRoomID:        revised.RoomID,
			model.FieldMovieID:       revised.MovieID,
			model.FieldStartTime:     revised.StartTime,
			model.FieldEndTime:       revised.EndTime,
			model.FieldPrice:         revised.Price,
			constant.FieldModifiedAt: revised.ModifiedAt,
			constant.FieldModifiedBy: revised.ModifiedBy,
		}, filter)
	})
	if err != nil {
		return res, scheduleError(err, "failed to revise screening")
	}

	s.invalidate(ctx, id)

	res.FromModel(revised)
	s.publish(ctx, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetScreeningsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".screening.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllScreening, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for screenings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get screenings")

		return res, fmt.Errorf("failed to get screenings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save screenings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".screening.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountScreening, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count screenings")

		return res, fmt.Errorf("failed to count screenings: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save screening count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ScreeningResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".screening.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetScreening, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	screening, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get screening")

		return res, fmt.Errorf("failed to get screening: %w", err)
	}

	if screening.ID == constant.Empty {
		return res, failure.NotFound(msgScreeningNotFound) // nolint:wrapcheck
	}

	res.FromModel(screening)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save screening to cache")
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".screening.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		screening, err := s.repo.GetTx(ctx, tx, gRepo.LockForUpdate, filter)
		if err != nil {
			return fmt.Errorf("failed to lock screening: %w", err)
		}

		if screening.ID == constant.Empty {
			return failure.NotFound(msgScreeningNotFound)
		}

		if err := s.ensureNoReservations(ctx, tx, id, msgScreeningDeleteInUse); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, filter)
	})
	if err != nil {
		var fail *failure.Failure
		if errors.As(err, &fail) {
			return err
		}

		if errors.Is(err, gRepo.ErrForeignKeyViolation) {
			return failure.InUse(msgScreeningDeleteInUse)
		}

		log.Error().Err(err).Msg("failed to delete screening")

		return fmt.Errorf("failed to delete screening: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// checkSlot resolves the movie and room of screening, fills in its end time and checks it against
// the other screenings of the room. excludeID names the screening being revised.
func (s *serviceImpl) checkSlot(ctx context.Context, tx *sqlx.Tx, screening *model.Screening, excludeID string) error {
	movie, err := s.movies.GetTx(ctx, tx, gRepo.LockForShare, shared.FilterByID(screening.MovieID, movieModel.FieldID, movieModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get movie: %w", err)
	}

	if movie.ID == constant.Empty {
		return failure.FieldError(failure.KindBadRequest, model.FieldMovieID, msgMovieNotFound)
	}

	room, err := s.rooms.GetTx(ctx, tx, gRepo.LockForUpdate, shared.FilterByID(screening.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.FieldError(failure.KindBadRequest, model.FieldRoomID, msgRoomNotFound)
	}

	candidate := schedule.NewInterval(screening.StartTime, movie.Duration())
	screening.EndTime = candidate.End

	from, to := candidate.Window()

	others, err := s.repo.GetInRoomWindowTx(ctx, tx, room.ID, from, to, excludeID)
	if err != nil {
		return fmt.Errorf("failed to get room screenings: %w", err)
	}

	existing := make([]schedule.Interval, len(others))
	for i, other := range others {
		existing[i] = schedule.Interval{Start: other.StartTime, End: other.EndTime}
	}

	return schedule.Validate(candidate, screening.Price, existing) // nolint:wrapcheck
}

func (s *serviceImpl) ensureNoReservations(ctx context.Context, tx *sqlx.Tx, id, inUseMsg string) error {
	total, err := s.reservations.CountTx(ctx, tx, shared.FilterByID(id, reservationModel.FieldScreeningID, reservationModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to count screening reservations: %w", err)
	}

	if total > 0 {
		return failure.InUse(inUseMsg)
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, res dto.ScreeningResponse) {
	if err := s.publisher.Publish(ctx, event.New(event.ScreeningScheduled, res.RoomID, res)); err != nil {
		log.Error().Err(err).Str("id", res.ID).Msg("failed to publish screening event")
	}
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllScreening)
	shared.InvalidateCaches(ctx, s.cache, cacheCountScreening)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	for _, key := range []string{
		shared.BuildCacheKey(cacheGetScreening, id),
		shared.BuildCacheKey(model.CacheAvailableSeats, id),
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete screening from cache")
		}
	}

	s.invalidateLists(ctx)
}

// scheduleError passes failures through and maps the exclusion constraint backing the overlap
// check to the same failure the check produces.
func scheduleError(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, gRepo.ErrExclusionViolation) {
		return schedule.OverlapError()
	}

	if errors.Is(err, gRepo.ErrForeignKeyViolation) {
		return failure.BadRequestFromString("room or movie no longer exists")
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}
