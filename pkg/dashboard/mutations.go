package dashboard

import (
	"context"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/query"
)

func keys(k ...query.Key) []query.Key { return k }

func (s *Service) succeed(message string) func(ctx context.Context) {
	return func(ctx context.Context) { notify.Success(ctx, s.notifier, message) }
}

// reviewTeacher evicts only the reviewed request's detail; details of other
// requests stay cached.
func (s *Service) reviewTeacher(ctx context.Context, id int64, fn func(context.Context, int64) (*api.StatusResponse, error), message string) (*api.StatusResponse, error) {
	done := s.succeed(message)
	return query.Mutate(ctx, s.cache, query.Mutation[int64, *api.StatusResponse]{
		Fn:         fn,
		Invalidate: func(int64, *api.StatusResponse) []query.Key { return keys(KeyTeacherRequests) },
		Remove:     func(id int64, _ *api.StatusResponse) []query.Key { return keys(KeyTeacherRequest(id)) },
		OnSuccess:  func(ctx context.Context, _ int64, _ *api.StatusResponse) { done(ctx) },
	}, id)
}

func (s *Service) ApproveTeacherRequest(ctx context.Context, id int64) (*api.StatusResponse, error) {
	return s.reviewTeacher(ctx, id, s.api.ApproveTeacherRequest, "Teacher request approved successfully!")
}

func (s *Service) RejectTeacherRequest(ctx context.Context, id int64) (*api.StatusResponse, error) {
	return s.reviewTeacher(ctx, id, s.api.RejectTeacherRequest, "Teacher request rejected successfully!")
}

func (s *Service) ApproveVideo(ctx context.Context, id int64) (*api.ApproveVideoResponse, error) {
	done := s.succeed("Video approved successfully!")
	return query.Mutate(ctx, s.cache, query.Mutation[int64, *api.ApproveVideoResponse]{
		Fn:         s.api.ApproveVideo,
		Invalidate: func(int64, *api.ApproveVideoResponse) []query.Key { return keys(KeyContentRequests) },
		OnSuccess:  func(ctx context.Context, _ int64, _ *api.ApproveVideoResponse) { done(ctx) },
	}, id)
}

func (s *Service) DisapproveVideo(ctx context.Context, id int64) (*api.DisapproveVideoResponse, error) {
	done := s.succeed("Video disapproved successfully!")
	return query.Mutate(ctx, s.cache, query.Mutation[int64, *api.DisapproveVideoResponse]{
		Fn:         s.api.DisapproveVideo,
		Invalidate: func(int64, *api.DisapproveVideoResponse) []query.Key { return keys(KeyContentRequests) },
		OnSuccess:  func(ctx context.Context, _ int64, _ *api.DisapproveVideoResponse) { done(ctx) },
	}, id)
}

func (s *Service) CreateContentType(ctx context.Context, in api.CreateTypeRequest) (*api.ContentType, error) {
	done := s.succeed("Content type created successfully!")
	return query.Mutate(ctx, s.cache, query.Mutation[api.CreateTypeRequest, *api.ContentType]{
		Fn:         s.api.CreateContentType,
		Invalidate: func(api.CreateTypeRequest, *api.ContentType) []query.Key { return keys(KeyContentTypes, KeyTagsByType) },
		OnSuccess:  func(ctx context.Context, _ api.CreateTypeRequest, _ *api.ContentType) { done(ctx) },
	}, in)
}

func (s *Service) CreateTag(ctx context.Context, in api.CreateTagRequest) (*api.Tag, error) {
	done := s.succeed("Tag created successfully!")
	return query.Mutate(ctx, s.cache, query.Mutation[api.CreateTagRequest, *api.Tag]{
		Fn:         s.api.CreateTag,
		Invalidate: func(api.CreateTagRequest, *api.Tag) []query.Key { return keys(KeyTags) },
		OnSuccess:  func(ctx context.Context, _ api.CreateTagRequest, _ *api.Tag) { done(ctx) },
	}, in)
}

type tagUpdate struct {
	id int64
	in api.UpdateTagRequest
}

func (s *Service) UpdateTag(ctx context.Context, id int64, in api.UpdateTagRequest) (*api.Tag, error) {
	done := s.succeed("Tag updated successfully!")
	return query.Mutate(ctx, s.cache, query.Mutation[tagUpdate, *api.Tag]{
		Fn: func(ctx context.Context, u tagUpdate) (*api.Tag, error) {
			return s.api.UpdateTag(ctx, u.id, u.in)
		},
		Invalidate: func(u tagUpdate, _ *api.Tag) []query.Key { return keys(KeyTags, KeyTag(u.id)) },
		OnSuccess:  func(ctx context.Context, _ tagUpdate, _ *api.Tag) { done(ctx) },
	}, tagUpdate{id: id, in: in})
}

func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	done := s.succeed("Tag deleted successfully!")
	_, err := query.Mutate(ctx, s.cache, query.Mutation[int64, struct{}]{
		Fn: func(ctx context.Context, id int64) (struct{}, error) {
			return struct{}{}, s.api.DeleteTag(ctx, id)
		},
		Invalidate: func(int64, struct{}) []query.Key { return keys(KeyTags) },
		Remove:     func(id int64, _ struct{}) []query.Key { return keys(KeyTag(id)) },
		OnSuccess:  func(ctx context.Context, _ int64, _ struct{}) { done(ctx) },
	}, id)
	return err
}
