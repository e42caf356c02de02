package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cinema/config"
	"cinema/infras/otel"
	"cinema/internal/domains/room/model"
	"cinema/internal/domains/room/model/dto"
	"cinema/internal/domains/room/repository"
	screeningModel "cinema/internal/domains/screening/model"
	screeningRepo "cinema/internal/domains/screening/repository"
	seatModel "cinema/internal/domains/seat/model"
	seatDto "cinema/internal/domains/seat/model/dto"
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
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

const (
	msgRoomNotFound    = "room not found"
	msgRoomUpdateInUse = "The room cannot be updated while it is in screenings"
	msgRoomDeleteInUse = "The room cannot be deleted while it is in screenings"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	Seats(ctx context.Context, id string) (seatDto.SeatMapResponse, error)
}

type serviceImpl struct {
	repo       repository.Room
	screenings screeningRepo.Screening
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Room, screenings screeningRepo.Screening, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:       repo,
		screenings: screenings,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	room := req.ToModel(user)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save room count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save room to cache")
	}

	return res, nil
}

// Update changes a room only while no screening refers to it. The check and the write share one
// transaction holding the room row lock, so a screening cannot be scheduled in between.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var updated model.Room

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.lockUnused(ctx, tx, id, msgRoomUpdateInUse)
		if err != nil {
			return err
		}

		updated = req.Apply(room)

		return s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, user), filter)
	})
	if err != nil {
		return res, s.guardError(err, msgRoomUpdateInUse, "failed to update room")
	}

	s.invalidate(ctx, id)

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.lockUnused(ctx, tx, id, msgRoomDeleteInUse); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, filter)
	})
	if err != nil {
		return s.guardError(err, msgRoomDeleteInUse, "failed to delete room")
	}

	s.invalidate(ctx, id)

	return nil
}

// Seats lists the seat map of a room in row-major order.
func (s *serviceImpl) Seats(ctx context.Context, id string) (res seatDto.SeatMapResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Seats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.Get(ctx, id)
	if err != nil {
		return res, err
	}

	seats := seatModel.Of(room.ID, room.RowsCount, room.SeatsPerRowCount)

	res.RoomID = room.ID
	res.Total = len(seats)
	res.Seats = seatDto.FromModels(seats)

	return res, nil
}

// lockUnused locks the room row and fails with in_use while any screening refers to it.
func (s *serviceImpl) lockUnused(ctx context.Context, tx *sqlx.Tx, id, inUseMsg string) (model.Room, error) {
	room, err := s.repo.GetTx(ctx, tx, gRepo.LockForUpdate, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(msgRoomNotFound)
	}

	total, err := s.screenings.CountTx(ctx, tx, shared.FilterByID(id, screeningModel.FieldRoomID, screeningModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to count room screenings: %w", err)
	}

	if total > 0 {
		return room, failure.InUse(inUseMsg)
	}

	return room, nil
}

func (s *serviceImpl) guardError(err error, inUseMsg, msg string) error {
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

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllRoom)
	shared.InvalidateCaches(ctx, s.cache, cacheCountRoom)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room from cache")
	}

	s.invalidateLists(ctx)
}
