package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Route is one method and path template. Templates use {id} and {name}.
type Route struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

func (r Route) withID(id int64) string {
	return strings.ReplaceAll(r.Path, "{id}", strconv.FormatInt(id, 10))
}

func (r Route) withName(name string) string {
	return strings.ReplaceAll(r.Path, "{name}", url.PathEscape(name))
}

// Endpoints is the server surface the domain clients talk to. The external
// API is versioned, so every entry can be overridden from a YAML file.
type Endpoints struct {
	Login            Route `yaml:"login"`
	TeacherRequests  Route `yaml:"teacher_requests"`
	TeacherRequest   Route `yaml:"teacher_request"`
	ApproveTeacher   Route `yaml:"approve_teacher"`
	RejectTeacher    Route `yaml:"reject_teacher"`
	ApprovedTeachers Route `yaml:"approved_teachers"`
	Students         Route `yaml:"students"`
	File             Route `yaml:"file"`

	CreateTag  Route `yaml:"create_tag"`
	Tags       Route `yaml:"tags"`
	Tag        Route `yaml:"tag"`
	UpdateTag  Route `yaml:"update_tag"`
	DeleteTag  Route `yaml:"delete_tag"`
	TagsByType Route `yaml:"tags_by_type"`

	ContentTypes      Route `yaml:"content_types"`
	CreateContentType Route `yaml:"create_content_type"`

	UnapprovedVideos Route `yaml:"unapproved_videos"`
	ApproveVideo     Route `yaml:"approve_video"`
	DisapproveVideo  Route `yaml:"disapprove_video"`
}

// DefaultEndpoints returns the routes served by the current API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:            Route{http.MethodPost, "/authentication/login"},
		TeacherRequests:  Route{http.MethodGet, "/authentication/teacherRequest"},
		TeacherRequest:   Route{http.MethodGet, "/teacher/teacherrequestbyid/{id}"},
		ApproveTeacher:   Route{http.MethodPatch, "/authentication/approveTeacher/{id}"},
		RejectTeacher:    Route{http.MethodPatch, "/authentication/rejectTeacher/{id}"},
		ApprovedTeachers: Route{http.MethodGet, "/authentication/approvedTeachers"},
		Students:         Route{http.MethodGet, "/authentication/students"},
		File:             Route{http.MethodGet, "/uploads/teacher/{name}"},

		CreateTag:  Route{http.MethodPost, "/tags"},
		Tags:       Route{http.MethodGet, "/tags/admin/all"},
		Tag:        Route{http.MethodGet, "/tags/admin/{id}"},
		UpdateTag:  Route{http.MethodPut, "/tags/admin/{id}"},
		DeleteTag:  Route{http.MethodDelete, "/tags/admin/{id}"},
		TagsByType: Route{http.MethodGet, "/tags/type"},

		ContentTypes:      Route{http.MethodGet, "/types"},
		CreateContentType: Route{http.MethodPost, "/types"},

		UnapprovedVideos: Route{http.MethodGet, "/course/unapproved-videos"},
		ApproveVideo:     Route{http.MethodPost, "/course-video/approve/{id}"},
		DisapproveVideo:  Route{http.MethodPost, "/course-video/dissapprove/{id}"},
	}
}

// ParseEndpoints overlays YAML on the defaults. Entries missing from data
// keep their default method and path.
func ParseEndpoints(data []byte) (Endpoints, error) {
	e := DefaultEndpoints()
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Endpoints{}, errors.Join(ErrInvalidEndpoints, err)
	}
	if err := e.validate(); err != nil {
		return Endpoints{}, err
	}
	return e, nil
}

// LoadEndpoints reads an override file. An empty path yields the defaults.
func LoadEndpoints(path string) (Endpoints, error) {
	if path == "" {
		return DefaultEndpoints(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Endpoints{}, errors.Join(ErrInvalidEndpoints, err)
	}
	return ParseEndpoints(data)
}

func (e Endpoints) validate() error {
	for name, r := range e.routes() {
		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return fmt.Errorf("%w: %s: unsupported method %q", ErrInvalidEndpoints, name, r.Method)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("%w: %s: path %q must start with /", ErrInvalidEndpoints, name, r.Path)
		}
	}
	return nil
}

func (e Endpoints) routes() map[string]Route {
	return map[string]Route{
		"login":               e.Login,
		"teacher_requests":    e.TeacherRequests,
		"teacher_request":     e.TeacherRequest,
		"approve_teacher":     e.ApproveTeacher,
		"reject_teacher":      e.RejectTeacher,
		"approved_teachers":   e.ApprovedTeachers,
		"students":            e.Students,
		"file":                e.File,
		"create_tag":          e.CreateTag,
		"tags":                e.Tags,
		"tag":                 e.Tag,
		"update_tag":          e.UpdateTag,
		"delete_tag":          e.DeleteTag,
		"tags_by_type":        e.TagsByType,
		"content_types":       e.ContentTypes,
		"create_content_type": e.CreateContentType,
		"unapproved_videos":   e.UnapprovedVideos,
		"approve_video":       e.ApproveVideo,
		"disapprove_video":    e.DisapproveVideo,
	}
}

// Lookup returns the route registered under its YAML name.
func (e Endpoints) Lookup(name string) (Route, error) {
	r, ok := e.routes()[name]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}
	return r, nil
}
