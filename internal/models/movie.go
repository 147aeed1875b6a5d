package models

import (
	"time"
)

type Movie struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id" example:"1"`
	Title              string    `gorm:"not null;index" json:"title" example:"Seven Samurai"`
	Director           string    `gorm:"not null" json:"director" example:"Akira Kurosawa"`
	ReleaseYear        int       `gorm:"not null;index" json:"release_year" example:"1954"`
	Language           string    `gorm:"not null;index" json:"language" example:"Japanese"`
	Rating             float64   `gorm:"not null;index" json:"rating" example:"8.6"`
	Genre              string    `gorm:"not null" json:"genre" example:"Action"`
	Runtime            int       `gorm:"not null" json:"runtime" example:"207"`
	BoxOffice          float64   `json:"box_office" example:"0.3"`
	Awards             Awards    `gorm:"type:text" json:"awards" swaggertype:"array,string"`
	Cinematographer    string    `json:"cinematographer" example:"Asakazu Nakai"`
	SoundtrackComposer string    `json:"soundtrack_composer" example:"Fumio Hayasaka"`
	CriticalReception  float64   `json:"critical_reception" example:"9.5"`
	UserReviews        string    `gorm:"type:text" json:"user_reviews"`
	CulturalImpact     string    `gorm:"type:text" json:"cultural_impact"`
	Trivia             string    `gorm:"type:text" json:"trivia"`
	AddedDate          time.Time `gorm:"not null;autoCreateTime;<-:create" json:"added_date"`
}

func (Movie) TableName() string {
	return "cinematic_treasures"
}

type PieChartData struct {
	Label string `json:"label" example:"English"`
	Value int64  `json:"value" example:"45"`
}

type ColumnChartData struct {
	Label string  `json:"label" example:"Seven Samurai"`
	Value float64 `json:"value" example:"89.2"`
}

type YearCount struct {
	Year  int   `json:"year" example:"1999"`
	Count int64 `json:"count" example:"3"`
}

type TimelinePoint struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
	BoxOffice   float64 `json:"box_office"`
	Language    string  `json:"language"`
}

type SentimentPoint struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Rating    float64 `json:"rating"`
	Sentiment float64 `json:"sentiment"`
}

type TopRatedEntry struct {
	Movie  Movie  `json:"movie"`
	Poster string `json:"poster"`
}

type DashboardData struct {
	TotalMovies   int64           `json:"total_movies" example:"12"`
	Movies        []Movie         `json:"movies"`
	LanguageShare []PieChartData  `json:"language_share"`
	TopRated      []TopRatedEntry `json:"top_rated"`
}

type AnalysisData struct {
	Timeline          []TimelinePoint   `json:"timeline"`
	LanguageDiversity []YearCount       `json:"language_diversity"`
	TopQuotients      []ColumnChartData `json:"top_quotients"`
	Sentiment         []SentimentPoint  `json:"sentiment"`
}

type MovieInsight struct {
	Movie               Movie   `json:"movie"`
	Fingerprint         string  `json:"fingerprint"`
	CulturalImpactScore float64 `json:"cultural_impact_score" example:"0.4"`
	Sentiment           float64 `json:"sentiment" example:"0.35"`
	CinematicQuotient   float64 `json:"cinematic_quotient" example:"89.2"`
}

type Soulmate struct {
	Target     Movie   `json:"target"`
	Match      Movie   `json:"match"`
	Similarity float64 `json:"similarity" example:"0.91"`
	Poster     string  `json:"poster"`
}

type ExportResult struct {
	ObjectName  string `json:"object_name" example:"vault_2f1c9a0e.xlsx"`
	DownloadURL string `json:"download_url,omitempty"`
	Rows        int    `json:"rows" example:"12"`
}
