package api

import (
	"encoding/json"
	"time"

	"github.com/hajar-aswad/Learnzone/pkg/session"
)

// AuthResponse is the login payload: the user profile plus tokens.
type AuthResponse struct {
	session.User
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

// Tokens returns the credentials carried by the response.
func (a AuthResponse) Tokens() session.Tokens {
	return session.Tokens{
		AccessToken:  a.AccessToken,
		RefreshToken: a.RefreshToken,
		ExpiresIn:    a.ExpiresIn,
	}
}

// TeacherRequest is a pending teacher application as listed.
type TeacherRequest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"teacherCreatedAt"`
}

// TeacherRequestDetail is the applicant account and its teacher profile.
type TeacherRequestDetail struct {
	FirstName   string         `json:"fName"`
	LastName    string         `json:"lName"`
	PhoneNumber string         `json:"phoneNumber"`
	Active      bool           `json:"active"`
	Email       string         `json:"email"`
	Role        string         `json:"role"`
	CreatedAt   time.Time      `json:"createdAt"`
	Teacher     TeacherProfile `json:"teacher"`
}

type TeacherProfile struct {
	ID           int64         `json:"id"`
	FacebookURL  string        `json:"facebookUrl"`
	InstagramURL string        `json:"instagramUrl"`
	CoverLetter  string        `json:"coverLetter"`
	CV           string        `json:"cv"`
	UserID       int64         `json:"userId"`
	TypeID       int64         `json:"typeId"`
	CreatedAt    time.Time     `json:"createdAt"`
	Certificates []Certificate `json:"certificate"`
}

type Certificate struct {
	ID          int64  `json:"id"`
	Certificate string `json:"certificate"`
	TeacherID   int64  `json:"teacherId"`
}

// StatusResponse is the body of approve and reject calls.
type StatusResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Account is a platform user as listed by the teachers and students endpoints.
type Account struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"fName"`
	LastName    string    `json:"lName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Active      bool      `json:"active"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TypeID    int64     `json:"typeId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTagRequest struct {
	Name   string `json:"name"`
	TypeID int64  `json:"typeId"`
}

// UpdateTagRequest sends only the fields that are set.
type UpdateTagRequest struct {
	Name   *string `json:"name,omitempty"`
	TypeID *int64  `json:"typeId,omitempty"`
}

// TagsResponse groups tags by content type id.
type TagsResponse struct {
	Success    bool            `json:"success"`
	TagsByType map[int64][]Tag `json:"tagsByType"`
	TotalCount int             `json:"totalCount"`
}

type ContentType struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTypeRequest struct {
	Name string `json:"name"`
}

type CourseVideo struct {
	ID             int64           `json:"id"`
	CourseID       int64           `json:"courseId"`
	YoutubeVideoID *string         `json:"youtubeVideoId"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ThumbnailURL   *string         `json:"thumbnail_url"`
	Path           string          `json:"path"`
	Approved       bool            `json:"approaved"`
	PrivacyStatus  *string         `json:"privacyStatus"`
	VideoURL       string          `json:"videoUrl"`
	Number         int             `json:"number"`
	Course         json.RawMessage `json:"course,omitempty"`
}

// CourseVideoRequest is a course with videos awaiting review.
type CourseVideoRequest struct {
	CourseID    int64         `json:"courseId"`
	CourseTitle string        `json:"courseTitle"`
	TeacherName string        `json:"teacherName"`
	Videos      []CourseVideo `json:"videos"`
}

type Reviewer struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type ApproveVideoResponse struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Thumbnails  struct {
			Medium struct {
				URL string `json:"url"`
			} `json:"medium"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Status struct {
		PrivacyStatus string `json:"privacyStatus"`
	} `json:"status"`
	ApprovedBy    Reviewer  `json:"approvedBy"`
	ApprovedAt    time.Time `json:"approvedAt"`
	YoutubeAccess bool      `json:"youtubeAccess"`
}

type DisapproveVideoResponse struct {
	DisapprovedBy Reviewer  `json:"disapprovedBy"`
	DisapprovedAt time.Time `json:"disapprovedAt"`
	Reasons       string    `json:"reasons,omitempty"`
	EmailSent     bool      `json:"emailSent"`
	EmailError    *string   `json:"emailError"`
}

// File is an uploaded document fetched by name.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
