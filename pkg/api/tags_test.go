package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hajar-aswad/Learnzone/pkg/api"
	"github.com/hajar-aswad/Learnzone/pkg/apiclient"
	"github.com/hajar-aswad/Learnzone/pkg/notify"
	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

func TestTags(t *testing.T) {
	t.Parallel()

	var updates []map[string]any
	f := setup(t, func(r chi.Router) {
		r.Post("/tags", func(w http.ResponseWriter, r *http.Request) {
			var in api.CreateTagRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeJSON(w, http.StatusCreated, api.Tag{ID: 5, Name: in.Name, TypeID: in.TypeID})
		})
		r.Get("/tags/admin/all", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []api.Tag{{ID: 5, Name: "algebra", TypeID: 1}})
		})
		r.Get("/tags/admin/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Tag not found"})
		})
		r.Put("/tags/admin/{id}", func(w http.ResponseWriter, r *http.Request) {
			var in map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			updates = append(updates, in)
			writeJSON(w, http.StatusOK, api.Tag{ID: 5, Name: "geometry", TypeID: 1})
		})
		r.Delete("/tags/admin/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
		})
		r.Get("/tags/type", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"success":    true,
				"tagsByType": map[string]any{"1": []api.Tag{{ID: 5, Name: "algebra", TypeID: 1}}},
				"totalCount": 1,
			})
		})
	})
	ctx := context.Background()

	tag, err := f.client.CreateTag(ctx, api.CreateTagRequest{Name: " algebra ", TypeID: 1})
	require.NoError(t, err)
	assert.Equal(t, "algebra", tag.Name)

	tags, err := f.client.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	_, err = f.client.Tag(ctx, 5)
	assert.True(t, apiclient.IsStatus(err, http.StatusNotFound), "tag reads return the error")

	name := "geometry"
	tag, err = f.client.UpdateTag(ctx, 5, api.UpdateTagRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "geometry", tag.Name)
	assert.Equal(t, []map[string]any{{"name": "geometry"}}, updates, "unset fields are not sent")

	require.NoError(t, f.client.DeleteTag(ctx, 5))

	grouped, err := f.client.TagsByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, grouped.TotalCount)
	assert.Len(t, grouped.TagsByType[1], 1)

	assert.Equal(t, []string{"Tag not found"}, f.notes.Messages(notify.TypeError))
}

func TestTags_Validation(t *testing.T) {
	t.Parallel()

	f := setup(t, func(chi.Router) {})
	ctx := context.Background()

	_, err := f.client.CreateTag(ctx, api.CreateTagRequest{Name: "  ", TypeID: 0})
	assert.ElementsMatch(t, []string{"name", "typeId"}, validator.ExtractValidationErrors(err).Fields())

	_, err = f.client.UpdateTag(ctx, 5, api.UpdateTagRequest{})
	assert.True(t, validator.IsValidationError(err))

	assert.Error(t, f.client.DeleteTag(ctx, 0))

	_, err = f.client.CreateContentType(ctx, api.CreateTypeRequest{})
	assert.True(t, validator.IsValidationError(err))

	_, err = f.client.ApproveVideo(ctx, -2)
	assert.True(t, validator.IsValidationError(err))

	assert.Len(t, f.notes.Messages(notify.TypeError), 5)
	assert.Zero(t, f.hits.Load())
}

func TestContentTypesAndVideos(t *testing.T) {
	t.Parallel()

	f := setup(t, func(r chi.Router) {
		r.Get("/types", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []api.ContentType{{ID: 1, Name: "Math"}})
		})
		r.Post("/types", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": []string{"name must be unique"}})
		})
		r.Get("/course/unapproved-videos", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{{
				"courseId": 3, "courseTitle": "Go basics", "teacherName": "Omar",
				"videos": []map[string]any{{"id": 11, "title": "Intro", "approaved": false, "thumbnail_url": nil}},
			}})
		})
		r.Post("/course-video/approve/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"id": "yt-" + chi.URLParam(r, "id"), "youtubeAccess": true,
				"approvedBy": map[string]any{"id": 1, "name": "Hana"},
			})
		})
		r.Post("/course-video/dissapprove/{id}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"emailSent": true, "emailError": nil})
		})
	})
	ctx := context.Background()

	types, err := f.client.ContentTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Math", types[0].Name)

	_, err = f.client.CreateContentType(ctx, api.CreateTypeRequest{Name: "Math"})
	assert.True(t, apiclient.IsStatus(err, http.StatusBadRequest))

	pending, err := f.client.UnapprovedVideos(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Intro", pending[0].Videos[0].Title)
	assert.Nil(t, pending[0].Videos[0].ThumbnailURL)

	approved, err := f.client.ApproveVideo(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "yt-11", approved.ID)
	assert.Equal(t, "Hana", approved.ApprovedBy.Name)

	rejected, err := f.client.DisapproveVideo(ctx, 11)
	require.NoError(t, err)
	assert.True(t, rejected.EmailSent)
	assert.Nil(t, rejected.EmailError)

	assert.Equal(t, []string{"name must be unique"}, f.notes.Messages(notify.TypeError))
}
