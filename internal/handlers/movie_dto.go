package handlers

import (
	"strconv"

	"cinematic-vault/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const minReleaseYear = 1800

// MovieRequest is the add/edit payload for both the HTML forms and the JSON API.
type MovieRequest struct {
	Title              string   `json:"title" form:"title"`
	Director           string   `json:"director" form:"director"`
	ReleaseYear        int      `json:"release_year" form:"release_year"`
	Language           string   `json:"language" form:"language"`
	Rating             float64  `json:"rating" form:"rating"`
	Genre              string   `json:"genre" form:"genre"`
	Runtime            int      `json:"runtime" form:"runtime"`
	BoxOffice          float64  `json:"box_office" form:"box_office"`
	Awards             []string `json:"awards" form:"awards"`
	Cinematographer    string   `json:"cinematographer" form:"cinematographer"`
	SoundtrackComposer string   `json:"soundtrack_composer" form:"soundtrack_composer"`
	CriticalReception  float64  `json:"critical_reception" form:"critical_reception"`
	UserReviews        string   `json:"user_reviews" form:"user_reviews"`
	CulturalImpact     string   `json:"cultural_impact" form:"cultural_impact"`
	Trivia             string   `json:"trivia" form:"trivia"`
}

// Validate applies the form bounds; currentYear caps release_year.
func (r MovieRequest) Validate(currentYear int) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
		validation.Field(&r.Director, validation.Required.Error("director is required"), validation.Length(1, 255)),
		validation.Field(&r.ReleaseYear,
			validation.Required.Error("release year is required"),
			validation.Min(minReleaseYear).Error("release year must be "+strconv.Itoa(minReleaseYear)+" or later"),
			validation.Max(currentYear).Error("release year cannot be after "+strconv.Itoa(currentYear)),
		),
		validation.Field(&r.Language, validation.Required.Error("language is required")),
		validation.Field(&r.Rating,
			validation.Min(0.0).Error("rating must be between 0 and 10"),
			validation.Max(10.0).Error("rating must be between 0 and 10"),
		),
		validation.Field(&r.Genre, validation.Required.Error("genre is required")),
		validation.Field(&r.Runtime,
			validation.Required.Error("runtime is required"),
			validation.Min(1).Error("runtime must be at least 1 minute"),
		),
		validation.Field(&r.BoxOffice, validation.Min(0.0).Error("box office cannot be negative")),
		validation.Field(&r.CriticalReception,
			validation.Min(0.0).Error("critical reception must be between 0 and 10"),
			validation.Max(10.0).Error("critical reception must be between 0 and 10"),
		),
		validation.Field(&r.Awards, validation.Each(validation.Length(1, 200))),
	)
}

// normalizeAwards splits any comma-joined entries, as the form sends one text field.
func (r *MovieRequest) normalizeAwards() {
	var awards []string
	for _, a := range r.Awards {
		awards = append(awards, models.ParseAwards(a)...)
	}
	if awards == nil {
		awards = []string{}
	}
	r.Awards = awards
}

func (r *MovieRequest) ToModel() *models.Movie {
	r.normalizeAwards()
	return &models.Movie{
		Title:              r.Title,
		Director:           r.Director,
		ReleaseYear:        r.ReleaseYear,
		Language:           r.Language,
		Rating:             r.Rating,
		Genre:              r.Genre,
		Runtime:            r.Runtime,
		BoxOffice:          r.BoxOffice,
		Awards:             models.Awards(r.Awards),
		Cinematographer:    r.Cinematographer,
		SoundtrackComposer: r.SoundtrackComposer,
		CriticalReception:  r.CriticalReception,
		UserReviews:        r.UserReviews,
		CulturalImpact:     r.CulturalImpact,
		Trivia:             r.Trivia,
	}
}

func RequestFromModel(m *models.Movie) MovieRequest {
	return MovieRequest{
		Title:              m.Title,
		Director:           m.Director,
		ReleaseYear:        m.ReleaseYear,
		Language:           m.Language,
		Rating:             m.Rating,
		Genre:              m.Genre,
		Runtime:            m.Runtime,
		BoxOffice:          m.BoxOffice,
		Awards:             []string(m.Awards),
		Cinematographer:    m.Cinematographer,
		SoundtrackComposer: m.SoundtrackComposer,
		CriticalReception:  m.CriticalReception,
		UserReviews:        m.UserReviews,
		CulturalImpact:     m.CulturalImpact,
		Trivia:             m.Trivia,
	}
}

// AwardsText joins awards for the single-line form input.
func (r MovieRequest) AwardsText() string {
	return models.Awards(r.Awards).String()
}

// newFormDefaults mirrors the slider and number input starting values.
func newFormDefaults(currentYear int) MovieRequest {
	return MovieRequest{
		ReleaseYear:       currentYear,
		Rating:            5.0,
		Runtime:           1,
		CriticalReception: 5.0,
		Awards:            []string{},
	}
}
