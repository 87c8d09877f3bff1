package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

func (c *Client) ContentTypes(ctx context.Context) ([]ContentType, error) {
	var out []ContentType
	r := c.endpoints.ContentTypes
	if err := c.call(ctx, r, r.Path, nil, &out); err != nil {
		return nil, c.fail(ctx, "content_types", fmt.Errorf("list content types: %w", err), "Failed to fetch content types")
	}
	return out, nil
}

func (c *Client) CreateContentType(ctx context.Context, in CreateTypeRequest) (*ContentType, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validator.Apply(
		validator.Required("name", in.Name),
		validator.MaxLen("name", in.Name, 100),
	); err != nil {
		return nil, c.fail(ctx, "create_content_type", err, "Failed to create content type")
	}
	var out ContentType
	r := c.endpoints.CreateContentType
	if err := c.call(ctx, r, r.Path, in, &out); err != nil {
		return nil, c.fail(ctx, "create_content_type", fmt.Errorf("create content type: %w", err), "Failed to create content type")
	}
	return &out, nil
}

// UnapprovedVideos lists courses with videos awaiting review.
func (c *Client) UnapprovedVideos(ctx context.Context) ([]CourseVideoRequest, error) {
	var out []CourseVideoRequest
	r := c.endpoints.UnapprovedVideos
	if err := c.call(ctx, r, r.Path, nil, &out); err != nil {
		return nil, c.fail(ctx, "unapproved_videos", fmt.Errorf("list unapproved videos: %w", err), "Failed to fetch unapproved videos")
	}
	return out, nil
}

func (c *Client) ApproveVideo(ctx context.Context, id int64) (*ApproveVideoResponse, error) {
	if err := validateID(id); err != nil {
		return nil, c.fail(ctx, "approve_video", err, "Failed to approve video")
	}
	var out ApproveVideoResponse
	r := c.endpoints.ApproveVideo
	if err := c.call(ctx, r, r.withID(id), nil, &out); err != nil {
		return nil, c.fail(ctx, "approve_video", fmt.Errorf("approve video %d: %w", id, err), "Failed to approve video")
	}
	return &out, nil
}

func (c *Client) DisapproveVideo(ctx context.Context, id int64) (*DisapproveVideoResponse, error) {
	if err := validateID(id); err != nil {
		return nil, c.fail(ctx, "disapprove_video", err, "Failed to disapprove video")
	}
	var out DisapproveVideoResponse
	r := c.endpoints.DisapproveVideo
	if err := c.call(ctx, r, r.withID(id), nil, &out); err != nil {
		return nil, c.fail(ctx, "disapprove_video", fmt.Errorf("disapprove video %d: %w", id, err), "Failed to disapprove video")
	}
	return &out, nil
}
