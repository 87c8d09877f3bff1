package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/hajar-aswad/Learnzone/pkg/session"
	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

// Login exchanges credentials for a user profile and tokens.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (*AuthResponse, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validator.Apply(
		validator.Required("email", creds.Email),
		validator.Email("email", creds.Email),
		validator.Required("password", creds.Password),
	); err != nil {
		return nil, c.fail(ctx, "login", err, "Login failed")
	}

	var out AuthResponse
	if err := c.call(ctx, c.endpoints.Login, c.endpoints.Login.Path, creds, &out); err != nil {
		return nil, c.fail(ctx, "login", fmt.Errorf("login: %w", err), "Login failed")
	}
	return &out, nil
}

// Authenticate adapts Login to the session manager.
func (c *Client) Authenticate(ctx context.Context, creds session.Credentials) (*session.Authentication, error) {
	resp, err := c.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return &session.Authentication{Tokens: resp.Tokens(), User: resp.User}, nil
}

// TeacherRequests lists pending teacher applications. Failures yield nil.
func (c *Client) TeacherRequests(ctx context.Context) ([]TeacherRequest, error) {
	var out []TeacherRequest
	r := c.endpoints.TeacherRequests
	if err := c.call(ctx, r, r.Path, nil, &out); err != nil {
		c.swallow(ctx, "teacher_requests", err, "Failed to fetch teacher requests")
		return nil, nil
	}
	return out, nil
}

// TeacherRequest fetches one application. Failures, including an invalid id,
// yield nil.
func (c *Client) TeacherRequest(ctx context.Context, id int64) (*TeacherRequestDetail, error) {
	if err := validateID(id); err != nil {
		c.swallow(ctx, "teacher_request", err, "Failed to fetch teacher request details")
		return nil, nil
	}
	var out TeacherRequestDetail
	r := c.endpoints.TeacherRequest
	if err := c.call(ctx, r, r.withID(id), nil, &out); err != nil {
		c.swallow(ctx, "teacher_request", err, "Failed to fetch teacher request details")
		return nil, nil
	}
	return &out, nil
}

func (c *Client) ApproveTeacherRequest(ctx context.Context, id int64) (*StatusResponse, error) {
	return c.reviewTeacher(ctx, "approve_teacher", c.endpoints.ApproveTeacher, id, "Failed to approve teacher request")
}

// RejectTeacherRequest uses the configured reject route; deployments disagree
// on its verb and path.
func (c *Client) RejectTeacherRequest(ctx context.Context, id int64) (*StatusResponse, error) {
	return c.reviewTeacher(ctx, "reject_teacher", c.endpoints.RejectTeacher, id, "Failed to reject teacher request")
}

func (c *Client) reviewTeacher(ctx context.Context, op string, r Route, id int64, fallback string) (*StatusResponse, error) {
	if err := validateID(id); err != nil {
		return nil, c.fail(ctx, op, err, fallback)
	}
	var out StatusResponse
	if err := c.call(ctx, r, r.withID(id), nil, &out); err != nil {
		return nil, c.fail(ctx, op, fmt.Errorf("%s %d: %w", op, id, err), fallback)
	}
	return &out, nil
}

// ApprovedTeachers lists active teachers. Failures yield nil.
func (c *Client) ApprovedTeachers(ctx context.Context) ([]Account, error) {
	return c.accounts(ctx, "approved_teachers", c.endpoints.ApprovedTeachers, "Failed to fetch teachers")
}

// Students lists students. Failures yield nil.
func (c *Client) Students(ctx context.Context) ([]Account, error) {
	return c.accounts(ctx, "students", c.endpoints.Students, "Failed to fetch students")
}

func (c *Client) accounts(ctx context.Context, op string, r Route, fallback string) ([]Account, error) {
	var out []Account
	if err := c.call(ctx, r, r.Path, nil, &out); err != nil {
		c.swallow(ctx, op, err, fallback)
		return nil, nil
	}
	return out, nil
}

// File downloads an uploaded teacher document. Failures yield nil.
func (c *Client) File(ctx context.Context, name string) (*File, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.swallow(ctx, "file", validator.Apply(validator.Required("filename", name)), "Failed to fetch file")
		return nil, nil
	}
	resp, err := c.http.Download(ctx, c.endpoints.File.withName(name))
	if err != nil {
		c.swallow(ctx, "file", err, "Failed to fetch file")
		return nil, nil
	}
	return &File{Name: name, ContentType: resp.ContentType(), Data: resp.Body}, nil
}
