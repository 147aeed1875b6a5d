package repository

import (
	"context"
	"errors"
	"time"

	"cinematic-vault/internal/database"
	"cinematic-vault/internal/models"

	"gorm.io/gorm"
)

// mutableColumns are replaced wholesale on update; id and added_date never are.
var mutableColumns = []string{
	"title", "director", "release_year", "language", "rating", "genre", "runtime",
	"box_office", "awards", "cinematographer", "soundtrack_composer",
	"critical_reception", "user_reviews", "cultural_impact", "trivia",
}

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, id uint, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)

	// Query operations
	Filter(ctx context.Context, field, value string) ([]models.Movie, error)
	FindByEra(ctx context.Context, startYear, endYear int) ([]models.Movie, error)
	TopRated(ctx context.Context, limit int) ([]models.Movie, error)
	CountBy(ctx context.Context, field, value string) (int64, error)
	Count(ctx context.Context) (int64, error)

	// Chart data operations
	LanguageDistribution(ctx context.Context) ([]models.PieChartData, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movie.ID = 0
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, id uint, movie *models.Movie) error {
	if id == 0 {
		return ErrMovieNotFound
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	movie.ID = id
	result := r.db.WithContext(ctx).
		Model(&models.Movie{ID: id}).
		Select(mutableColumns).
		Updates(movie)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrMovieNotFound
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error
	return movies, err
}

func (r *movieRepository) Filter(ctx context.Context, field, value string) ([]models.Movie, error) {
	crit, err := parseCriterion(field, value, false)
	if err != nil {
		return nil, err
	}

	if crit.isText() {
		return r.matchText(ctx, crit)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	where, arg := crit.where()
	var movies []models.Movie
	err = r.db.WithContext(ctx).Where(where, arg).Order("id ASC").Find(&movies).Error
	return movies, err
}

// matchText scans the catalog in id order and keeps the rows crit matches.
func (r *movieRepository) matchText(ctx context.Context, crit criterion) ([]models.Movie, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var movies []models.Movie
	for i := range all {
		if crit.matches(&all[i]) {
			movies = append(movies, all[i])
		}
	}
	return movies, nil
}

func (r *movieRepository) FindByEra(ctx context.Context, startYear, endYear int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Where("release_year BETWEEN ? AND ?", startYear, endYear).
		Order("release_year ASC, id ASC").
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) TopRated(ctx context.Context, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	err := r.db.WithContext(ctx).
		Order("rating DESC, id ASC").
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

func (r *movieRepository) CountBy(ctx context.Context, field, value string) (int64, error) {
	crit, err := parseCriterion(field, value, true)
	if err != nil {
		return 0, err
	}

	if crit.isText() {
		movies, err := r.matchText(ctx, crit)
		return int64(len(movies)), err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	where, arg := crit.where()
	var count int64
	err = r.db.WithContext(ctx).Model(&models.Movie{}).Where(where, arg).Count(&count).Error
	return count, err
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&count).Error
	return count, err
}

func (r *movieRepository) LanguageDistribution(ctx context.Context) ([]models.PieChartData, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var results []models.PieChartData
	err := r.db.WithContext(ctx).Model(&models.Movie{}).
		Select("language as label, COUNT(id) as value").
		Group("language").
		Order("value DESC, label ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
