package handlers

import (
	"errors"
	"fmt"
	"testing"

	"cinematic-vault/internal/models"
	"cinematic-vault/internal/repository"
	"cinematic-vault/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() MovieRequest {
	return MovieRequest{
		Title:             "Stalker",
		Director:          "Andrei Tarkovsky",
		ReleaseYear:       1979,
		Language:          "Russian",
		Rating:            8.1,
		Genre:             "Science Fiction",
		Runtime:           162,
		CriticalReception: 9.0,
	}
}

func TestMovieRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *MovieRequest)
		field  string
	}{
		{"valid", func(r *MovieRequest) {}, ""},
		{"zero rating allowed", func(r *MovieRequest) { r.Rating = 0 }, ""},
		{"current year allowed", func(r *MovieRequest) { r.ReleaseYear = 2024 }, ""},
		{"future year", func(r *MovieRequest) { r.ReleaseYear = 2025 }, "release_year"},
		{"too old", func(r *MovieRequest) { r.ReleaseYear = 1799 }, "release_year"},
		{"rating above ten", func(r *MovieRequest) { r.Rating = 10.1 }, "rating"},
		{"negative box office", func(r *MovieRequest) { r.BoxOffice = -1 }, "box_office"},
		{"zero runtime", func(r *MovieRequest) { r.Runtime = 0 }, "runtime"},
		{"critics below zero", func(r *MovieRequest) { r.CriticalReception = -0.5 }, "critical_reception"},
		{"missing director", func(r *MovieRequest) { r.Director = "" }, "director"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := req.Validate(2024)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, fieldErrors(err), tt.field)
		})
	}
}

func TestToModelSplitsAwards(t *testing.T) {
	req := validRequest()
	req.Awards = []string{"Ecumenical Jury Prize, ", " Golden Globe"}

	movie := req.ToModel()
	assert.Equal(t, models.Awards{"Ecumenical Jury Prize", "Golden Globe"}, movie.Awards)
	assert.Equal(t, "Ecumenical Jury Prize,Golden Globe", req.AwardsText())

	empty := validRequest()
	assert.Equal(t, models.Awards{}, empty.ToModel().Awards)
}

func TestRequestFromModelRoundTrip(t *testing.T) {
	req := validRequest()
	req.Awards = []string{"Prize"}

	back := RequestFromModel(req.ToModel())
	assert.Equal(t, req, back)
}

func TestStatusFor(t *testing.T) {
	wrapped := fmt.Errorf("failed to update movie: %w", repository.ErrMovieNotFound)

	assert.Equal(t, fiber.StatusNotFound, statusFor(wrapped))
	assert.Equal(t, fiber.StatusNotFound, statusFor(services.ErrNoSoulmate))
	assert.Equal(t, fiber.StatusBadRequest, statusFor(repository.ErrInvalidField))
	assert.Equal(t, fiber.StatusBadRequest, statusFor(repository.ErrInvalidValue))
	assert.Equal(t, fiber.StatusServiceUnavailable, statusFor(services.ErrObjectStoreDisabled))
	assert.Equal(t, fiber.StatusInternalServerError, statusFor(errors.New("disk full")))
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, raw := range []string{"", "0", "-3", "x"} {
		_, err := parseID(raw)
		assert.ErrorIs(t, err, errInvalidID, raw)
	}
}
