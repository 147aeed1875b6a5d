package handlers

import (
	"strconv"

	"cinematic-vault/internal/analytics"
	"cinematic-vault/internal/services"
	"cinematic-vault/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
	year    func() int
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
		year:    currentYear,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description List every movie in the vault in storage order
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.GetMovieByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, id, "Failed to get movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Add a movie
// @Description Validate and store a new movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(h.year()); err != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fieldErrors(err))
	}

	movie := req.ToModel()
	if err := h.service.CreateMovie(c.UserContext(), movie); err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Replace every mutable field of an existing movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie request object"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(h.year()); err != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fieldErrors(err))
	}

	movie := req.ToModel()
	if err := h.service.UpdateMovie(c.UserContext(), id, movie); err != nil {
		return h.fail(c, err, id, "Failed to update movie")
	}

	updated, err := h.service.GetMovieByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, id, "Failed to reload movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", updated)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.DeleteMovie(c.UserContext(), id); err != nil {
		return h.fail(c, err, id, "Failed to delete movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// FilterMovies godoc
// @Summary Filter movies by one field
// @Description Numeric fields match exactly, text fields by case-insensitive substring
// @Tags discover
// @Produce json
// @Param field query string true "Field name, e.g. genre or release_year"
// @Param value query string true "Value to match"
// @Success 200 {object} utils.StandardResponse "Matching movies"
// @Failure 400 {object} utils.StandardResponse "Unknown field or bad value"
// @Router /movies/filter [get]
func (h *MovieHandler) FilterMovies(c *fiber.Ctx) error {
	movies, err := h.service.FilterMovies(c.UserContext(), c.Query("field"), c.Query("value"))
	if err != nil {
		return h.fail(c, err, 0, "Failed to filter movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies filtered successfully", movies)
}

// CountMovies godoc
// @Summary Count movies where a field equals a value
// @Tags discover
// @Produce json
// @Param field query string true "Field name"
// @Param value query string true "Exact value"
// @Success 200 {object} utils.StandardResponse "Count"
// @Failure 400 {object} utils.StandardResponse "Unknown field or bad value"
// @Router /movies/count [get]
func (h *MovieHandler) CountMovies(c *fiber.Ctx) error {
	field := c.Query("field")
	count, err := h.service.CountMoviesBy(c.UserContext(), field, c.Query("value"))
	if err != nil {
		return h.fail(c, err, 0, "Failed to count movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies counted successfully", fiber.Map{
		"field": field,
		"value": c.Query("value"),
		"count": count,
	})
}

// GetMoviesByEra godoc
// @Summary Movies released within a year range
// @Tags discover
// @Produce json
// @Param start query int true "First year, inclusive"
// @Param end query int true "Last year, inclusive"
// @Success 200 {object} utils.StandardResponse "Movies in range"
// @Failure 400 {object} utils.StandardResponse "Invalid year"
// @Router /movies/era [get]
func (h *MovieHandler) GetMoviesByEra(c *fiber.Ctx) error {
	start, err := strconv.Atoi(c.Query("start"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid start year")
	}
	end, err := strconv.Atoi(c.Query("end"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid end year")
	}

	movies, err := h.service.GetMoviesByEra(c.UserContext(), start, end)
	if err != nil {
		return h.fail(c, err, 0, "Failed to get movies by era")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetTopRated godoc
// @Summary Highest rated movies with ASCII posters
// @Tags discover
// @Produce json
// @Param limit query int false "Number of movies" default(10)
// @Success 200 {object} utils.StandardResponse "Top rated movies"
// @Router /movies/top-rated [get]
func (h *MovieHandler) GetTopRated(c *fiber.Ctx) error {
	entries, err := h.service.GetTopRated(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return h.fail(c, err, 0, "Failed to get top rated movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Top rated movies retrieved successfully", entries)
}

// FindSoulmate godoc
// @Summary Most similar other movie by fingerprint
// @Tags discover
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Soulmate"
// @Failure 404 {object} utils.StandardResponse "Movie not found or no other movie"
// @Router /movies/{id}/soulmate [get]
func (h *MovieHandler) FindSoulmate(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	soulmate, err := h.service.FindSoulmate(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, id, "Failed to find soulmate")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Soulmate found", soulmate)
}

// GetInsight godoc
// @Summary Derived metrics for one movie
// @Description Fingerprint, cultural impact score, review sentiment and cinematic quotient
// @Tags discover
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Insight"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/insight [get]
func (h *MovieHandler) GetInsight(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	insight, err := h.service.GetInsight(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, id, "Failed to build insight")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Insight retrieved successfully", insight)
}

// GetPoster godoc
// @Summary ASCII poster for one movie
// @Tags discover
// @Produce plain
// @Param id path int true "Movie ID"
// @Success 200 {string} string "Poster"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/poster [get]
func (h *MovieHandler) GetPoster(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.GetMovieByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, id, "Failed to get movie")
	}

	c.Type("txt", "utf-8")
	return c.SendString(analytics.Poster(movie.Title, movie.Director, movie.ReleaseYear))
}

// GetDashboard godoc
// @Summary Home page data
// @Description All movies, language share and top rated posters
// @Tags charts
// @Produce json
// @Success 200 {object} utils.StandardResponse "Dashboard"
// @Router /dashboard [get]
func (h *MovieHandler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.service.GetDashboard(c.UserContext())
	if err != nil {
		return h.fail(c, err, 0, "Failed to build dashboard")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Dashboard retrieved successfully", dash)
}

// GetPieChartData godoc
// @Summary Language distribution
// @Tags charts
// @Produce json
// @Success 200 {object} utils.StandardResponse "Pie chart data"
// @Router /charts/pie [get]
func (h *MovieHandler) GetPieChartData(c *fiber.Ctx) error {
	data, err := h.service.GetLanguageDistribution(c.UserContext())
	if err != nil {
		return h.fail(c, err, 0, "Failed to get language distribution")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Pie chart data retrieved successfully", data)
}

// GetAnalysis godoc
// @Summary Analysis chart series
// @Description Timeline, language diversity, top quotients and rating vs sentiment
// @Tags charts
// @Produce json
// @Success 200 {object} utils.StandardResponse "Analysis data"
// @Router /charts/analysis [get]
func (h *MovieHandler) GetAnalysis(c *fiber.Ctx) error {
	data, err := h.service.GetAnalysis(c.UserContext())
	if err != nil {
		return h.fail(c, err, 0, "Failed to build analysis")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Analysis data retrieved successfully", data)
}

// GetColumnChartData godoc
// @Summary Top movies by cinematic quotient
// @Tags charts
// @Produce json
// @Success 200 {object} utils.StandardResponse "Column chart data"
// @Router /charts/column [get]
func (h *MovieHandler) GetColumnChartData(c *fiber.Ctx) error {
	data, err := h.service.GetAnalysis(c.UserContext())
	if err != nil {
		return h.fail(c, err, 0, "Failed to build column chart")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Column chart data retrieved successfully", data.TopQuotients)
}

func (h *MovieHandler) fail(c *fiber.Ctx, err error, id uint, msg string) error {
	code := statusFor(err)
	entry := h.logger.WithError(err)
	if id != 0 {
		entry = entry.WithField("id", id)
	}
	if code >= fiber.StatusInternalServerError {
		entry.Error(msg)
		return utils.ErrorResponse(c, code, msg)
	}
	entry.Warn(msg)
	return utils.ErrorResponse(c, code, err.Error())
}
