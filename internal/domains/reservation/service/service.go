package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"cinema/config"
	"cinema/infras/otel"
	"cinema/internal/domains/reservation/model"
	"cinema/internal/domains/reservation/model/dto"
	"cinema/internal/domains/reservation/repository"
	roomModel "cinema/internal/domains/room/model"
	roomRepo "cinema/internal/domains/room/repository"
	screeningModel "cinema/internal/domains/screening/model"
	screeningRepo "cinema/internal/domains/screening/repository"
	seatModel "cinema/internal/domains/seat/model"
	seatDto "cinema/internal/domains/seat/model/dto"
	"cinema/permissions"
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
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

const (
	msgReservationNotFound = "reservation not found"
	msgScreeningNotFound   = "screening not found"
	msgRoomNotFound        = "room not found"
	msgInvalidSeatID       = "seat_id must look like <room id>:<row>:<number>"
	msgSeatNotInRoom       = "Seat does not belong to the screening room."
	msgAlreadyReserved     = "Seat is already reserved for this screening."
)

type Reservation interface {
	Reserve(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) error
	AvailableSeats(ctx context.Context, screeningID string) (seatDto.AvailableSeatsResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	screenings screeningRepo.Screening
	rooms      roomRepo.Room
	publisher  event.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	screenings screeningRepo.Screening,
	rooms roomRepo.Room,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		screenings: screenings,
		rooms:      rooms,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Reserve books one seat of the screening room. The screening and room rows are held FOR SHARE
// until the insert commits, so a revision cannot move the screening to another room in between. A
// seat taken concurrently surfaces as a unique violation and is reported as already reserved.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	seat, err := seatModel.ParseID(req.SeatID)
	if err != nil {
		return res, failure.FieldError(failure.KindBadRequest, "seat_id", msgInvalidSeatID) // nolint:wrapcheck
	}

	var reservation model.Reservation

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		screening, room, err := s.lockScreeningRoom(ctx, tx, req.ScreeningID)
		if err != nil {
			return err
		}

		if !seat.In(room.ID, room.RowsCount, room.SeatsPerRowCount) {
			return failure.FieldError(failure.KindSeatNotInRoom, "seat_id", msgSeatNotInRoom) // nolint:wrapcheck
		}

		reservation = dto.ToModel(screening.ID, seat, user)

		return s.repo.InsertTx(ctx, tx, reservation)
	})
	if err != nil {
		return res, reserveError(err)
	}

	s.invalidate(ctx, reservation.ScreeningID)

	res.FromModel(reservation)

	if err := s.publisher.Publish(ctx, event.New(event.SeatReserved, reservation.ScreeningID, res)); err != nil {
		log.Error().Err(err).Str("id", res.ID).Msg("failed to publish reservation event")
	}

	return res, nil
}

// GetAll lists reservations. Callers without the staff role only see their own.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !permissions.IsStaff(role) {
		filter = gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				filter,
				gDto.Filter{Field: constant.FieldCreatedBy, Value: user, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		}
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save reservations to cache")
	}

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save reservation count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.owned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.owned(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.invalidate(ctx, reservation.ScreeningID)

	var payload dto.ReservationResponse
	payload.FromModel(reservation)

	if err := s.publisher.Publish(ctx, event.New(event.ReservationCancelled, reservation.ScreeningID, payload)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to publish cancellation event")
	}

	return nil
}

// AvailableSeats is the seat map of the screening room minus its reserved seats, in seat map order.
// Answers are cached for a few seconds; every reservation change drops the entry.
func (s *serviceImpl) AvailableSeats(ctx context.Context, screeningID string) (res seatDto.AvailableSeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.AvailableSeats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(screeningModel.CacheAvailableSeats, screeningID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for available seats")

		return res, nil
	}

	screening, room, err := s.screeningRoom(ctx, screeningID)
	if err != nil {
		return res, err
	}

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{},
		shared.FilterByID(screening.ID, model.FieldScreeningID, model.TableName),
		model.FieldSeatRow, model.FieldSeatNumber, model.FieldRoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reserved seats")

		return res, fmt.Errorf("failed to get reserved seats: %w", err)
	}

	all := seatModel.Of(room.ID, room.RowsCount, room.SeatsPerRowCount)
	available := seatModel.Available(all, model.Seats(reservations))

	res.ScreeningID = screening.ID
	res.RoomID = room.ID
	res.Total = len(all)
	res.Available = len(available)
	res.Seats = seatDto.FromModels(available)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.AvailabilityTTL); err != nil {
		log.Error().Err(err).Msg("failed to save available seats to cache")
	}

	return res, nil
}

func (s *serviceImpl) screeningRoom(ctx context.Context, screeningID string) (screeningModel.Screening, roomModel.Room, error) {
	var room roomModel.Room

	screening, err := s.screenings.Get(ctx, shared.FilterByID(screeningID, screeningModel.FieldID, screeningModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get screening")

		return screening, room, fmt.Errorf("failed to get screening: %w", err)
	}

	if screening.ID == constant.Empty {
		return screening, room, failure.NotFound(msgScreeningNotFound)
	}

	room, err = s.rooms.Get(ctx, shared.FilterByID(screening.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return screening, room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return screening, room, failure.NotFound(msgRoomNotFound)
	}

	return screening, room, nil
}

func (s *serviceImpl) lockScreeningRoom(ctx context.Context, tx *sqlx.Tx, screeningID string) (screeningModel.Screening, roomModel.Room, error) {
	var room roomModel.Room

	screening, err := s.screenings.GetTx(ctx, tx, gRepo.LockForShare, shared.FilterByID(screeningID, screeningModel.FieldID, screeningModel.TableName))
	if err != nil {
		return screening, room, fmt.Errorf("failed to lock screening: %w", err)
	}

	if screening.ID == constant.Empty {
		return screening, room, failure.FieldError(failure.KindBadRequest, model.FieldScreeningID, msgScreeningNotFound) // nolint:wrapcheck
	}

	room, err = s.rooms.GetTx(ctx, tx, gRepo.LockForShare, shared.FilterByID(screening.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return screening, room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return screening, room, failure.NotFound(msgRoomNotFound)
	}

	return screening, room, nil
}

func reserveError(err error) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, gRepo.ErrUniqueViolation) {
		return failure.Conflict(failure.KindAlreadyReserved, msgAlreadyReserved) // nolint:wrapcheck
	}

	// screening deleted, or moved to another room, before the insert
	if errors.Is(err, gRepo.ErrForeignKeyViolation) {
		return failure.FieldError(failure.KindBadRequest, model.FieldScreeningID, msgScreeningNotFound) // nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to reserve seat")

	return fmt.Errorf("failed to reserve seat: %w", err)
}

// owned loads a reservation the caller may access. Other callers get not found.
func (s *serviceImpl) owned(ctx context.Context, id string) (model.Reservation, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty || !permissions.CanAccess(role, user, reservation.CreatedBy) {
		return model.Reservation{}, failure.NotFound(msgReservationNotFound)
	}

	return reservation, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, screeningID string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(screeningModel.CacheAvailableSeats, screeningID)); err != nil {
		log.Error().Err(err).Str("screening_id", screeningID).Msg("failed to drop available seats from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
	shared.InvalidateCaches(ctx, s.cache, cacheCountReservation)
}
