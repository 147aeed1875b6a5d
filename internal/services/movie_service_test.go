package services

import (
	"context"
	"io"
	"testing"
	"time"

	"cinematic-vault/internal/config"
	"cinematic-vault/internal/database"
	"cinematic-vault/internal/models"
	"cinematic-vault/internal/repository"
	"cinematic-vault/internal/sentiment"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupMovieService(t *testing.T) (*movieService, repository.MovieRepository) {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), config.DatabaseConfig{
		Driver:       "sqlite",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewMovieRepository(db)
	stub := sentiment.AnalyzerFunc(func(text string) float64 {
		if text == "" {
			return 0
		}
		return 0.5
	})
	svc := NewMovieService(repo, stub, testLogger()).(*movieService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc, repo
}

func newMovie(title string, year int, language string, rating float64) *models.Movie {
	return &models.Movie{
		Title:       title,
		Director:    "Someone",
		ReleaseYear: year,
		Language:    language,
		Rating:      rating,
		Genre:       "Drama",
		Runtime:     100,
		Awards:      models.Awards{},
	}
}

func TestCreateUpdateDeleteMovie(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	movie := newMovie("Heat", 1995, "English", 8.3)
	require.NoError(t, svc.CreateMovie(ctx, movie))
	require.NotZero(t, movie.ID)

	edited := newMovie("Heat", 1995, "English", 9.0)
	require.NoError(t, svc.UpdateMovie(ctx, movie.ID, edited))

	got, err := svc.GetMovieByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Rating)

	require.NoError(t, svc.DeleteMovie(ctx, movie.ID))
	_, err = svc.GetMovieByID(ctx, movie.ID)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)

	assert.ErrorIs(t, svc.DeleteMovie(ctx, movie.ID), repository.ErrMovieNotFound)
	assert.ErrorIs(t, svc.UpdateMovie(ctx, movie.ID, edited), repository.ErrMovieNotFound)
}

func TestFindSoulmate(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	heat := newMovie("Heat", 1995, "English", 8.3)
	heap := newMovie("Heap", 1995, "English", 8.3)
	other := newMovie("Lawrence of Arabia", 1962, "English", 8.3)
	for _, m := range []*models.Movie{heat, heap, other} {
		require.NoError(t, svc.CreateMovie(ctx, m))
	}

	soulmate, err := svc.FindSoulmate(ctx, heat.ID)
	require.NoError(t, err)
	assert.Equal(t, heap.ID, soulmate.Match.ID)
	assert.Equal(t, heat.ID, soulmate.Target.ID)
	assert.Contains(t, soulmate.Poster, "Heap")

	_, err = svc.FindSoulmate(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
}

func TestFindSoulmateAlone(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	solo := newMovie("Solaris", 1972, "Russian", 8.0)
	require.NoError(t, svc.CreateMovie(ctx, solo))

	_, err := svc.FindSoulmate(ctx, solo.ID)
	assert.ErrorIs(t, err, ErrNoSoulmate)
}

func TestGetInsight(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	movie := newMovie("Memento", 2000, "English", 8.0)
	movie.CulturalImpact = "a groundbreaking and iconic film"
	movie.Awards = models.Awards{"Oscar", "Globe"}
	movie.UserReviews = "loved it"
	require.NoError(t, svc.CreateMovie(ctx, movie))

	insight, err := svc.GetInsight(ctx, movie.ID)
	require.NoError(t, err)
	assert.InDelta(t, 89.2, insight.CinematicQuotient, 1e-9)
	assert.InDelta(t, 0.4, insight.CulturalImpactScore, 1e-9)
	assert.Equal(t, 0.5, insight.Sentiment)
	assert.NotEmpty(t, insight.Fingerprint)
}

func TestGetDashboard(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	for i, lang := range []string{"English", "French", "English"} {
		require.NoError(t, svc.CreateMovie(ctx, newMovie("Movie", 1990+i, lang, float64(5+i))))
	}

	dash, err := svc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dash.TotalMovies)
	assert.Len(t, dash.Movies, 3)
	assert.Equal(t, []models.PieChartData{{Label: "English", Value: 2}, {Label: "French", Value: 1}}, dash.LanguageShare)
	require.Len(t, dash.TopRated, 3)
	assert.Equal(t, 7.0, dash.TopRated[0].Movie.Rating)
	assert.Contains(t, dash.TopRated[0].Poster, "Director: Someone")
}

func TestGetAnalysis(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	low := newMovie("Low", 2000, "English", 4)
	high := newMovie("High", 2000, "French", 9)
	high.UserReviews = "superb"
	require.NoError(t, svc.CreateMovie(ctx, low))
	require.NoError(t, svc.CreateMovie(ctx, high))

	analysis, err := svc.GetAnalysis(ctx)
	require.NoError(t, err)
	assert.Len(t, analysis.Timeline, 2)
	assert.Equal(t, []models.YearCount{{Year: 2000, Count: 2}}, analysis.LanguageDiversity)
	require.Len(t, analysis.TopQuotients, 2)
	assert.Equal(t, "High", analysis.TopQuotients[0].Label)
	assert.InDelta(t, 91.2, analysis.TopQuotients[0].Value, 1e-9)
	require.Len(t, analysis.Sentiment, 2)
	assert.Equal(t, 0.0, analysis.Sentiment[0].Sentiment)
	assert.Equal(t, 0.5, analysis.Sentiment[1].Sentiment)
}

func TestGetMoviesByEraSwapsBounds(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	require.NoError(t, svc.CreateMovie(ctx, newMovie("A", 1950, "English", 5)))
	require.NoError(t, svc.CreateMovie(ctx, newMovie("B", 1970, "English", 5)))

	movies, err := svc.GetMoviesByEra(ctx, 1960, 1940)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "A", movies[0].Title)
}

func TestFilterAndCountWrapErrors(t *testing.T) {
	svc, _ := setupMovieService(t)
	ctx := context.Background()

	_, err := svc.FilterMovies(ctx, "bogus", "x")
	assert.ErrorIs(t, err, repository.ErrInvalidField)

	_, err = svc.CountMoviesBy(ctx, "rating", "high")
	assert.ErrorIs(t, err, repository.ErrInvalidValue)
}
