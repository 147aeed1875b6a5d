package handlers

import (
	"errors"
	"strconv"
	"time"

	"cinematic-vault/internal/repository"
	"cinematic-vault/internal/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid movie ID")

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var verrs validation.Errors
	switch {
	case errors.Is(err, repository.ErrMovieNotFound), errors.Is(err, services.ErrNoSoulmate):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrInvalidField), errors.Is(err, repository.ErrInvalidValue), errors.As(err, &verrs):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrObjectStoreDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// fieldErrors flattens ozzo errors into field -> message for templates and JSON.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, fe := range verrs {
			out[field] = fe.Error()
		}
		return out
	}
	if err != nil {
		out["form"] = err.Error()
	}
	return out
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func currentYear() int {
	return time.Now().Year()
}
