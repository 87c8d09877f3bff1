package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/logger"
)

// StatisticsConfig points at the statistics service, which lives on its own
// host and takes no credentials.
type StatisticsConfig struct {
	BaseURL string        `env:"STATS_URL" envDefault:"https://icep-final-production.up.railway.app"`
	Timeout time.Duration `env:"STATS_TIMEOUT" envDefault:"10s"`
}

func DefaultStatisticsConfig() StatisticsConfig {
	return StatisticsConfig{
		BaseURL: "https://icep-final-production.up.railway.app",
		Timeout: 10 * time.Second,
	}
}

// Metric names a counted resource.
type Metric string

const (
	MetricStudents    Metric = "students"
	MetricTeachers    Metric = "teachers"
	MetricReels       Metric = "reels"
	MetricArticles    Metric = "articles"
	MetricShortVideos Metric = "short-videos"
)

// Metrics lists every counter in display order.
var Metrics = []Metric{MetricStudents, MetricTeachers, MetricReels, MetricArticles, MetricShortVideos}

// Summary is the current month at a glance.
type Summary struct {
	Students    int64           `json:"students"`
	Teachers    int64           `json:"teachers"`
	Reels       int64           `json:"reels"`
	Articles    int64           `json:"articles"`
	ShortVideos int64           `json:"shortVideos"`
	TopCourses  json.RawMessage `json:"topCourses"`
}

// Statistics reads platform counters. Errors are returned as is; the
// pipeline it runs on is responsible for notifying them.
type Statistics struct {
	http *apiclient.Client
	log  *slog.Logger
}

func NewStatistics(pipeline *apiclient.Client, log *slog.Logger) *Statistics {
	if log == nil {
		log = logger.Discard()
	}
	return &Statistics{http: pipeline, log: log.With(logger.Component("statistics"))}
}

func (s *Statistics) get(ctx context.Context, path string, out any) error {
	if err := s.http.Get(ctx, path, out); err != nil {
		return fmt.Errorf("statistics %s: %w", path, err)
	}
	return nil
}

// ThisMonth returns the counter for m in the current month.
func (s *Statistics) ThisMonth(ctx context.Context, m Metric) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := s.get(ctx, "/statistics/"+string(m)+"-this-month", &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *Statistics) TopCourses(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.get(ctx, "/statistics/top-courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Monthly returns the per-month breakdown for m.
func (s *Statistics) Monthly(ctx context.Context, m Metric) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.get(ctx, "/statistics/monthly/"+string(m), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyAll returns every breakdown in one response.
func (s *Statistics) MonthlyAll(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := s.get(ctx, "/statistics/monthly/all", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// All fetches every current-month counter and the top courses in parallel
// and returns the first failure once every request has finished.
func (s *Statistics) All(ctx context.Context) (*Summary, error) {
	var sum Summary
	var g errgroup.Group

	counters := map[Metric]*int64{
		MetricStudents:    &sum.Students,
		MetricTeachers:    &sum.Teachers,
		MetricReels:       &sum.Reels,
		MetricArticles:    &sum.Articles,
		MetricShortVideos: &sum.ShortVideos,
	}
	for m, dst := range counters {
		g.Go(func() error {
			n, err := s.ThisMonth(ctx, m)
			*dst = n
			return err
		})
	}
	g.Go(func() error {
		top, err := s.TopCourses(ctx)
		sum.TopCourses = top
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WarnContext(ctx, "statistics summary failed", logger.Error(err))
		return nil, err
	}
	return &sum, nil
}
