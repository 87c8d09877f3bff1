package dashboard

import (
	"context"
	"encoding/json"

	"github.com/hajar-aswad/Learnzone/pkg/api"
)

func (s *Service) TeacherRequests(ctx context.Context) ([]api.TeacherRequest, error) {
	return optional(ctx, s, KeyTeacherRequests, ReviewWindow, s.api.TeacherRequests, notNilSlice[api.TeacherRequest])
}

// TeacherRequest is disabled for a zero id and returns nil without a call.
func (s *Service) TeacherRequest(ctx context.Context, id int64) (*api.TeacherRequestDetail, error) {
	if id == 0 {
		return nil, nil
	}
	return optional(ctx, s, KeyTeacherRequest(id), DetailWindow, func(ctx context.Context) (*api.TeacherRequestDetail, error) {
		return s.api.TeacherRequest(ctx, id)
	}, notNil[api.TeacherRequestDetail])
}

func (s *Service) ApprovedTeachers(ctx context.Context) ([]api.Account, error) {
	return optional(ctx, s, KeyApprovedTeachers, DetailWindow, s.api.ApprovedTeachers, notNilSlice[api.Account])
}

func (s *Service) Students(ctx context.Context) ([]api.Account, error) {
	return optional(ctx, s, KeyStudents, DetailWindow, s.api.Students, notNilSlice[api.Account])
}

// File is disabled for an empty name.
func (s *Service) File(ctx context.Context, name string) (*api.File, error) {
	if name == "" {
		return nil, nil
	}
	return optional(ctx, s, KeyFile(name), FileWindow, func(ctx context.Context) (*api.File, error) {
		return s.api.File(ctx, name)
	}, notNil[api.File])
}

func (s *Service) Tags(ctx context.Context) ([]api.Tag, error) {
	return cached(ctx, s, KeyTags, DetailWindow, s.api.Tags)
}

// Tag is disabled for a zero id.
func (s *Service) Tag(ctx context.Context, id int64) (*api.Tag, error) {
	if id == 0 {
		return nil, nil
	}
	return cached(ctx, s, KeyTag(id), DetailWindow, func(ctx context.Context) (*api.Tag, error) {
		return s.api.Tag(ctx, id)
	})
}

func (s *Service) TagsByType(ctx context.Context) (*api.TagsResponse, error) {
	return cached(ctx, s, KeyTagsByType, DetailWindow, s.api.TagsByType)
}

func (s *Service) ContentTypes(ctx context.Context) ([]api.ContentType, error) {
	return cached(ctx, s, KeyContentTypes, DetailWindow, s.api.ContentTypes)
}

// ContentRequests lists courses with videos awaiting review.
func (s *Service) ContentRequests(ctx context.Context) ([]api.CourseVideoRequest, error) {
	return cached(ctx, s, KeyContentRequests, ReviewWindow, s.api.UnapprovedVideos)
}

func (s *Service) Stats(ctx context.Context) (*api.Summary, error) {
	if s.stats == nil {
		return nil, ErrNoStatistics
	}
	return cached(ctx, s, KeyStats, StatsWindow, s.stats.All)
}

// MonthlyStats returns the breakdown for one metric, or for all of them when
// m is empty.
func (s *Service) MonthlyStats(ctx context.Context, m api.Metric) (json.RawMessage, error) {
	if s.stats == nil {
		return nil, ErrNoStatistics
	}
	if m == "" {
		return cached(ctx, s, KeyMonthlyStats("all"), StatsWindow, s.stats.MonthlyAll)
	}
	return cached(ctx, s, KeyMonthlyStats(m), StatsWindow, func(ctx context.Context) (json.RawMessage, error) {
		return s.stats.Monthly(ctx, m)
	})
}
