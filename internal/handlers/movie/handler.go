package movie

import (
	"cinema/infras/otel"
	"cinema/internal/domains/movie/model"
	"cinema/internal/domains/movie/model/dto"
	"cinema/internal/domains/movie/service"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	"cinema/shared/failure"
	"cinema/shared/validator"
	"cinema/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Movie
	otel    otel.Otel
}

func New(service service.Movie, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/movies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMovie)
		routerGroup.Get("/", handler.GetMovies)
		routerGroup.Get("/{id}", handler.GetMovieByID)
		routerGroup.Patch("/{id}", handler.UpdateMovie)
		routerGroup.Delete("/{id}", handler.DeleteMovie)
		routerGroup.Put("/{id}/poster", handler.UploadPoster)
	})
}

// CreateMovie handles the creation of a new movie.
// @Summary Create a new movie
// @Tags Movie
// @Accept json
// @Produce json
// @Param request body dto.CreateMovieRequest true "Movie details"
// @Success 201 {object} response.Data[dto.MovieResponse] "Movie created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies [post]
// @Security BearerAuth
func (handler *Handler) CreateMovie(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMovie")
	defer scope.End()

	req := dto.CreateMovieRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	movie, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create movie")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, movie)
}

// GetMovies retrieves all movies based on query parameters.
// @Summary Get all movies
// @Tags Movie
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Success 200 {object} response.Data[dto.GetMoviesResponse] "List of movies"
// @Failure 500 {object} response.Error
// @Router /v1/movies [get]
func (handler *Handler) GetMovies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Sanitize(model.FieldTitle, model.FieldTitle, model.FieldDurationMinutes, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldTitle),
				Table:    model.TableName,
			},
		},
	}

	movies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get movies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, movies)
}

// GetMovieByID retrieves a movie by its ID.
// @Summary Get a movie by ID
// @Tags Movie
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} response.Data[dto.MovieResponse] "Movie details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id} [get]
func (handler *Handler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovieByID")
	defer scope.End()

	movie, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get movie by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, movie)
}

// UpdateMovie updates an existing movie by its ID.
// @Summary Update a movie by ID
// @Description Rejected while any screening references the movie.
// @Tags Movie
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param request body dto.UpdateMovieRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.MovieResponse] "Movie updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMovie")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMovieRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	movie, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update movie")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, movie)
}

// DeleteMovie deletes a movie by its ID.
// @Summary Delete a movie by ID
// @Description Rejected while any screening references the movie.
// @Tags Movie
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} response.Message "Movie deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMovie")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete movie")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Movie deleted successfully")
}

// UploadPoster replaces the poster image of a movie.
// @Summary Upload a movie poster
// @Description PNG or JPEG, at most 2 MB. Allowed while the movie has screenings.
// @Tags Movie
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Movie ID"
// @Param poster formData file true "Poster image"
// @Success 200 {object} response.Data[dto.MovieResponse] "Poster uploaded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/movies/{id}/poster [put]
// @Security BearerAuth
func (handler *Handler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPoster")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UploadPosterRequest{}

	file, fileHeader, err := r.FormFile(constant.FormFilePoster)
	if err == nil {
		req.Poster = fileHeader
		req.PosterFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	movie, err := handler.service.UploadPoster(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload movie poster")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Movie poster uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, movie)
}
