package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinematic-vault/internal/analytics"
	"cinematic-vault/internal/metrics"
	"cinematic-vault/internal/models"
	"cinematic-vault/internal/repository"
	"cinematic-vault/internal/sentiment"

	"github.com/sirupsen/logrus"
)

const (
	topRatedLimit = 10
	topCQLimit    = 10
)

var ErrNoSoulmate = errors.New("no other movie to compare with")

type MovieService interface {
	// CRUD operations
	CreateMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id uint) error
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	GetAllMovies(ctx context.Context) ([]models.Movie, error)

	// Discovery operations
	FilterMovies(ctx context.Context, field, value string) ([]models.Movie, error)
	GetMoviesByEra(ctx context.Context, startYear, endYear int) ([]models.Movie, error)
	CountMoviesBy(ctx context.Context, field, value string) (int64, error)
	GetTopRated(ctx context.Context, limit int) ([]models.TopRatedEntry, error)
	FindSoulmate(ctx context.Context, id uint) (*models.Soulmate, error)
	GetInsight(ctx context.Context, id uint) (*models.MovieInsight, error)

	// Dashboard and chart operations
	GetDashboard(ctx context.Context) (*models.DashboardData, error)
	GetAnalysis(ctx context.Context) (*models.AnalysisData, error)
	GetLanguageDistribution(ctx context.Context) ([]models.PieChartData, error)
}

type movieService struct {
	repo     repository.MovieRepository
	analyzer sentiment.Analyzer
	logger   *logrus.Logger
	now      func() time.Time
}

func NewMovieService(repo repository.MovieRepository, analyzer sentiment.Analyzer, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:     repo,
		analyzer: analyzer,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	err := s.repo.Create(ctx, movie)
	metrics.RecordStoreOperation("create", err)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	metrics.CatalogSize.Inc()
	s.logger.WithFields(logrus.Fields{
		"id":    movie.ID,
		"title": movie.Title,
	}).Info("Movie added to vault")
	return nil
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error {
	err := s.repo.Update(ctx, id, movie)
	metrics.RecordStoreOperation("update", err)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}

	s.logger.WithField("id", id).Info("Movie updated")
	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	metrics.RecordStoreOperation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}

	metrics.CatalogSize.Dec()
	s.logger.WithField("id", id).Info("Movie removed from vault")
	return nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *movieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *movieService) FilterMovies(ctx context.Context, field, value string) ([]models.Movie, error) {
	movies, err := s.repo.Filter(ctx, field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to filter movies: %w", err)
	}
	return movies, nil
}

func (s *movieService) GetMoviesByEra(ctx context.Context, startYear, endYear int) ([]models.Movie, error) {
	if startYear > endYear {
		startYear, endYear = endYear, startYear
	}
	return s.repo.FindByEra(ctx, startYear, endYear)
}

func (s *movieService) CountMoviesBy(ctx context.Context, field, value string) (int64, error) {
	count, err := s.repo.CountBy(ctx, field, value)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

func (s *movieService) GetTopRated(ctx context.Context, limit int) ([]models.TopRatedEntry, error) {
	if limit < 1 {
		limit = topRatedLimit
	}

	movies, err := s.repo.TopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top rated movies: %w", err)
	}

	entries := make([]models.TopRatedEntry, 0, len(movies))
	for _, m := range movies {
		entries = append(entries, models.TopRatedEntry{
			Movie:  m,
			Poster: analytics.Poster(m.Title, m.Director, m.ReleaseYear),
		})
	}
	return entries, nil
}

func (s *movieService) FindSoulmate(ctx context.Context, id uint) (*models.Soulmate, error) {
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	match, similarity, ok := analytics.FindSoulmate(*target, movies)
	if !ok {
		return nil, ErrNoSoulmate
	}

	s.logger.WithFields(logrus.Fields{
		"id":         id,
		"soulmate":   match.ID,
		"similarity": similarity,
	}).Debug("Soulmate found")

	return &models.Soulmate{
		Target:     *target,
		Match:      match,
		Similarity: similarity,
		Poster:     analytics.Poster(match.Title, match.Director, match.ReleaseYear),
	}, nil
}

func (s *movieService) GetInsight(ctx context.Context, id uint) (*models.MovieInsight, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.MovieInsight{
		Movie:               *movie,
		Fingerprint:         analytics.Fingerprint(*movie),
		CulturalImpactScore: analytics.CulturalImpactScore(movie.CulturalImpact),
		Sentiment:           s.analyzer.Polarity(movie.UserReviews),
		CinematicQuotient:   analytics.CinematicQuotient(*movie, s.now().Year()),
	}, nil
}

// GetDashboard gathers everything the Home page shows.
func (s *movieService) GetDashboard(ctx context.Context) (*models.DashboardData, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	share, err := s.repo.LanguageDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get language distribution: %w", err)
	}

	top, err := s.GetTopRated(ctx, topRatedLimit)
	if err != nil {
		return nil, err
	}

	metrics.CatalogSize.Set(float64(len(movies)))

	return &models.DashboardData{
		TotalMovies:   int64(len(movies)),
		Movies:        movies,
		LanguageShare: share,
		TopRated:      top,
	}, nil
}

// GetAnalysis builds the four Analysis page series from one full read.
func (s *movieService) GetAnalysis(ctx context.Context) (*models.AnalysisData, error) {
	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}

	data := &models.AnalysisData{
		Timeline:          make([]models.TimelinePoint, 0, len(movies)),
		LanguageDiversity: analytics.LanguageDiversity(movies),
		TopQuotients:      make([]models.ColumnChartData, 0, topCQLimit),
		Sentiment:         make([]models.SentimentPoint, 0, len(movies)),
	}

	for _, m := range movies {
		data.Timeline = append(data.Timeline, models.TimelinePoint{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseYear: m.ReleaseYear,
			Rating:      m.Rating,
			BoxOffice:   m.BoxOffice,
			Language:    m.Language,
		})
		data.Sentiment = append(data.Sentiment, models.SentimentPoint{
			ID:        m.ID,
			Title:     m.Title,
			Rating:    m.Rating,
			Sentiment: s.analyzer.Polarity(m.UserReviews),
		})
	}

	for _, scored := range analytics.TopByQuotient(movies, s.now().Year(), topCQLimit) {
		data.TopQuotients = append(data.TopQuotients, models.ColumnChartData{
			Label: scored.Movie.Title,
			Value: scored.Quotient,
		})
	}

	return data, nil
}

func (s *movieService) GetLanguageDistribution(ctx context.Context) ([]models.PieChartData, error) {
	return s.repo.LanguageDistribution(ctx)
}
