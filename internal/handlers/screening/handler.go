package screening

import (
	"cinema/infras/otel"
	reservationService "cinema/internal/domains/reservation/service"
	"cinema/internal/domains/screening/model"
	"cinema/internal/domains/screening/model/dto"
	"cinema/internal/domains/screening/service"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	"cinema/shared/validator"
	"cinema/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Screening
	reservations reservationService.Reservation
	otel         otel.Otel
}

func New(service service.Screening, reservations reservationService.Reservation, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		reservations: reservations,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/screenings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.ProposeScreening)
		routerGroup.Get("/", handler.GetScreenings)
		routerGroup.Get("/{id}", handler.GetScreeningByID)
		routerGroup.Patch("/{id}", handler.ReviseScreening)
		routerGroup.Delete("/{id}", handler.DeleteScreening)
		routerGroup.Get("/{id}/available-seats", handler.GetAvailableSeats)
	})
}

// ProposeScreening schedules a movie in a room.
// @Summary Schedule a screening
// @Description The end time is derived from the movie duration. The slot must fit business hours
// @Description and keep the idle gap to neighbouring screenings in the same room.
// @Tags Screening
// @Accept json
// @Produce json
// @Param request body dto.CreateScreeningRequest true "Screening details"
// @Success 201 {object} response.Data[dto.ScreeningResponse] "Screening scheduled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/screenings [post]
// @Security BearerAuth
func (handler *Handler) ProposeScreening(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProposeScreening")
	defer scope.End()

	req := dto.CreateScreeningRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	screening, err := handler.service.Propose(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to propose screening")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Screening scheduled by user " + user)

	response.WithJSON(writer, http.StatusCreated, screening)
}

// GetScreenings lists screenings.
// @Summary Get all screenings
// @Tags Screening
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Param movie_id query string false "Filter by movie"
// @Param date query string false "Filter by calendar day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetScreeningsResponse] "List of screenings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/screenings [get]
func (handler *Handler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetScreenings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(model.FieldStartTime, model.FieldStartTime, model.FieldPrice, constant.FieldCreatedAt)

	filter := dto.ScreeningFilter{}
	filter.FromRequest(r)

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate filter")

		response.WithError(w, err)

		return
	}

	screenings, err := handler.service.GetAll(ctx, queryParams, filter.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get screenings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, screenings)
}

// GetScreeningByID retrieves a screening by its ID.
// @Summary Get a screening by ID
// @Tags Screening
// @Produce json
// @Param id path string true "Screening ID"
// @Success 200 {object} response.Data[dto.ScreeningResponse] "Screening details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/screenings/{id} [get]
func (handler *Handler) GetScreeningByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetScreeningByID")
	defer scope.End()

	screening, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get screening by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, screening)
}

// ReviseScreening moves, re-prices or re-assigns a screening.
// @Summary Revise a screening
// @Description The revised slot is checked against the same rules as a new one, ignoring the screening itself.
// @Tags Screening
// @Accept json
// @Produce json
// @Param id path string true "Screening ID"
// @Param request body dto.UpdateScreeningRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.ScreeningResponse] "Screening revised"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/screenings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) ReviseScreening(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReviseScreening")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateScreeningRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	screening, err := handler.service.Revise(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to revise screening")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Screening revised by user " + user)

	response.WithJSON(w, http.StatusOK, screening)
}

// DeleteScreening removes a screening without reservations.
// @Summary Delete a screening by ID
// @Tags Screening
// @Produce json
// @Param id path string true "Screening ID"
// @Success 200 {object} response.Message "Screening deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/screenings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteScreening")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete screening")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Screening deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Screening deleted successfully")
}

// GetAvailableSeats lists the seats of the screening room that are still free.
// @Summary Get available seats of a screening
// @Tags Screening
// @Produce json
// @Param id path string true "Screening ID"
// @Success 200 {object} response.Data[seatDto.AvailableSeatsResponse] "Available seats"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/screenings/{id}/available-seats [get]
func (handler *Handler) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSeats")
	defer scope.End()

	seats, err := handler.reservations.AvailableSeats(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available seats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, seats)
}
