package handlers

import (
	"errors"
	"strconv"

	"cinematic-vault/internal/models"
	"cinematic-vault/internal/repository"
	"cinematic-vault/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const layout = "layouts/main"

// PageHandler renders the HTML pages of the vault.
type PageHandler struct {
	service services.MovieService
	logger  *logrus.Logger
	year    func() int
}

func NewPageHandler(service services.MovieService, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		logger:  logger,
		year:    currentYear,
	}
}

func (h *PageHandler) render(c *fiber.Ctx, status int, view string, bind fiber.Map) error {
	return c.Status(status).Render(view, bind, layout)
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	dash, err := h.service.GetDashboard(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load dashboard")
		return err
	}

	return h.render(c, fiber.StatusOK, "home", fiber.Map{
		"Title":     "Home",
		"Active":    "home",
		"Dashboard": dash,
	})
}

func (h *PageHandler) formBind(title, active, action, submit string, form MovieRequest, errs map[string]string) fiber.Map {
	if errs == nil {
		errs = map[string]string{}
	}
	return fiber.Map{
		"Title":  title,
		"Active": active,
		"Action": action,
		"Submit": submit,
		"Form":   form,
		"Errors": errs,
		"Year":   h.year(),
	}
}

func (h *PageHandler) AddForm(c *fiber.Ctx) error {
	bind := h.formBind("Add", "add", "/add", "Add to vault", newFormDefaults(h.year()), nil)
	return h.render(c, fiber.StatusOK, "add", bind)
}

func (h *PageHandler) AddSubmit(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		bind := h.formBind("Add", "add", "/add", "Add to vault", req, map[string]string{"form": "Invalid input: " + err.Error()})
		return h.render(c, fiber.StatusBadRequest, "add", bind)
	}
	req.normalizeAwards()

	if err := req.Validate(h.year()); err != nil {
		bind := h.formBind("Add", "add", "/add", "Add to vault", req, fieldErrors(err))
		return h.render(c, fiber.StatusBadRequest, "add", bind)
	}

	movie := req.ToModel()
	if err := h.service.CreateMovie(c.UserContext(), movie); err != nil {
		h.logger.WithError(err).Error("Failed to add movie")
		return err
	}

	bind := h.formBind("Add", "add", "/add", "Add to vault", newFormDefaults(h.year()), nil)
	bind["Success"] = movie.Title + " has been added to your vault."
	return h.render(c, fiber.StatusCreated, "add", bind)
}

func (h *PageHandler) discoverBind(c *fiber.Ctx) (fiber.Map, error) {
	movies, err := h.service.GetAllMovies(c.UserContext())
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Title":  "Discover",
		"Active": "discover",
		"Fields": repository.FilterFields,
		"Movies": movies,
		"Field":  "",
		"Value":  "",
		"Start":  1800,
		"End":    h.year(),
		"Year":   h.year(),
	}, nil
}

func (h *PageHandler) Discover(c *fiber.Ctx) error {
	bind, err := h.discoverBind(c)
	if err != nil {
		return err
	}
	return h.render(c, fiber.StatusOK, "discover", bind)
}

func (h *PageHandler) DiscoverSubmit(c *fiber.Ctx) error {
	bind, err := h.discoverBind(c)
	if err != nil {
		return err
	}

	field := repository.NormalizeField(c.FormValue("field"))
	value := c.FormValue("value")
	bind["Field"] = field
	bind["Value"] = value

	results, err := h.service.FilterMovies(c.UserContext(), field, value)
	if err != nil {
		code := statusFor(err)
		if code >= fiber.StatusInternalServerError {
			return err
		}
		bind["Error"] = err.Error()
		return h.render(c, code, "discover", bind)
	}

	bind["Searched"] = true
	bind["Results"] = results
	return h.render(c, fiber.StatusOK, "discover", bind)
}

func (h *PageHandler) DiscoverEra(c *fiber.Ctx) error {
	bind, err := h.discoverBind(c)
	if err != nil {
		return err
	}

	start, errStart := strconv.Atoi(c.FormValue("start"))
	end, errEnd := strconv.Atoi(c.FormValue("end"))
	if errStart != nil || errEnd != nil {
		bind["Error"] = "Years must be whole numbers."
		return h.render(c, fiber.StatusBadRequest, "discover", bind)
	}
	bind["Start"] = start
	bind["End"] = end

	results, err := h.service.GetMoviesByEra(c.UserContext(), start, end)
	if err != nil {
		return err
	}

	bind["Searched"] = true
	bind["Results"] = results
	return h.render(c, fiber.StatusOK, "discover", bind)
}

func (h *PageHandler) Soulmate(c *fiber.Ctx) error {
	bind, err := h.discoverBind(c)
	if err != nil {
		return err
	}

	id, err := parseID(c.FormValue("id"))
	if err != nil {
		bind["Error"] = "Pick a movie first."
		return h.render(c, fiber.StatusBadRequest, "discover", bind)
	}

	soulmate, err := h.service.FindSoulmate(c.UserContext(), id)
	switch {
	case errors.Is(err, services.ErrNoSoulmate):
		bind["Error"] = "Add at least one more movie to find a soulmate."
		return h.render(c, fiber.StatusOK, "discover", bind)
	case errors.Is(err, repository.ErrMovieNotFound):
		bind["Error"] = "That movie is no longer in the vault."
		return h.render(c, fiber.StatusNotFound, "discover", bind)
	case err != nil:
		return err
	}

	bind["Soulmate"] = soulmate
	return h.render(c, fiber.StatusOK, "discover", bind)
}

func (h *PageHandler) updateBind(c *fiber.Ctx, id uint) (fiber.Map, error) {
	movies, err := h.service.GetAllMovies(c.UserContext())
	if err != nil {
		return nil, err
	}
	bind := h.formBind("Update", "update", "/update/"+strconv.FormatUint(uint64(id), 10), "Save changes", MovieRequest{}, nil)
	bind["Movies"] = movies
	bind["SelectedID"] = id
	return bind, nil
}

// UpdateSelect lists the movies; the picker submits ?id= back here.
func (h *PageHandler) UpdateSelect(c *fiber.Ctx) error {
	if raw := c.Query("id"); raw != "" {
		if id, err := parseID(raw); err == nil {
			return c.Redirect("/update/" + strconv.FormatUint(uint64(id), 10))
		}
	}

	bind, err := h.updateBind(c, 0)
	if err != nil {
		return err
	}
	return h.render(c, fiber.StatusOK, "update", bind)
}

func (h *PageHandler) UpdateForm(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.GetMovieByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrMovieNotFound) {
		bind, berr := h.updateBind(c, 0)
		if berr != nil {
			return berr
		}
		bind["Error"] = "Movie not found."
		return h.render(c, fiber.StatusNotFound, "update", bind)
	}
	if err != nil {
		return err
	}

	bind, err := h.updateBind(c, id)
	if err != nil {
		return err
	}
	bind["Form"] = RequestFromModel(movie)
	return h.render(c, fiber.StatusOK, "update", bind)
}

func (h *PageHandler) UpdateSubmit(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	bind, err := h.updateBind(c, id)
	if err != nil {
		return err
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		bind["Form"] = req
		bind["Errors"] = map[string]string{"form": "Invalid input: " + err.Error()}
		return h.render(c, fiber.StatusBadRequest, "update", bind)
	}
	req.normalizeAwards()
	bind["Form"] = req

	if err := req.Validate(h.year()); err != nil {
		bind["Errors"] = fieldErrors(err)
		return h.render(c, fiber.StatusBadRequest, "update", bind)
	}

	err = h.service.UpdateMovie(c.UserContext(), id, req.ToModel())
	if errors.Is(err, repository.ErrMovieNotFound) {
		bind["Error"] = "Movie not found."
		return h.render(c, fiber.StatusNotFound, "update", bind)
	}
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return err
	}

	// Reload so the picker shows the new title.
	bind, err = h.updateBind(c, id)
	if err != nil {
		return err
	}
	bind["Form"] = req
	bind["Success"] = req.Title + " has been updated."
	return h.render(c, fiber.StatusOK, "update", bind)
}

func (h *PageHandler) removeBind(c *fiber.Ctx) (fiber.Map, error) {
	movies, err := h.service.GetAllMovies(c.UserContext())
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Title":  "Remove",
		"Active": "remove",
		"Movies": movies,
	}, nil
}

func (h *PageHandler) RemoveForm(c *fiber.Ctx) error {
	bind, err := h.removeBind(c)
	if err != nil {
		return err
	}
	return h.render(c, fiber.StatusOK, "remove", bind)
}

func (h *PageHandler) RemoveSubmit(c *fiber.Ctx) error {
	id, idErr := parseID(c.FormValue("id"))
	confirmed := c.FormValue("confirm") != ""

	var (
		status  = fiber.StatusOK
		message string
		failure string
		removed *models.Movie
	)

	switch {
	case idErr != nil:
		status, failure = fiber.StatusBadRequest, "Pick a movie to remove."
	case !confirmed:
		status, failure = fiber.StatusBadRequest, "Please confirm the removal."
	default:
		movie, err := h.service.GetMovieByID(c.UserContext(), id)
		if err == nil {
			removed = movie
			err = h.service.DeleteMovie(c.UserContext(), id)
		}
		switch {
		case errors.Is(err, repository.ErrMovieNotFound):
			status, failure = fiber.StatusNotFound, "Movie not found."
		case err != nil:
			h.logger.WithError(err).WithField("id", id).Error("Failed to remove movie")
			return err
		default:
			message = removed.Title + " has been removed from your vault."
		}
	}

	bind, err := h.removeBind(c)
	if err != nil {
		return err
	}
	if message != "" {
		bind["Success"] = message
	}
	if failure != "" {
		bind["Error"] = failure
	}
	return h.render(c, status, "remove", bind)
}

func (h *PageHandler) Analysis(c *fiber.Ctx) error {
	data, err := h.service.GetAnalysis(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("Failed to build analysis")
		return err
	}

	return h.render(c, fiber.StatusOK, "analysis", fiber.Map{
		"Title":    "Analysis",
		"Active":   "analysis",
		"Analysis": data,
	})
}
