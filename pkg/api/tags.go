package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

func validateTag(name string, typeID int64) error {
	return validator.Apply(
		validator.Required("name", name),
		validator.MaxLen("name", name, 100),
		validator.Positive("typeId", typeID),
	)
}

func (c *Client) CreateTag(ctx context.Context, in CreateTagRequest) (*Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateTag(in.Name, in.TypeID); err != nil {
		return nil, c.fail(ctx, "create_tag", err, "Failed to create tag")
	}
	var out Tag
	r := c.endpoints.CreateTag
	if err := c.call(ctx, r, r.Path, in, &out); err != nil {
		return nil, c.fail(ctx, "create_tag", fmt.Errorf("create tag: %w", err), "Failed to create tag")
	}
	return &out, nil
}

func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var out []Tag
	r := c.endpoints.Tags
	if err := c.call(ctx, r, r.Path, nil, &out); err != nil {
		return nil, c.fail(ctx, "tags", fmt.Errorf("list tags: %w", err), "Failed to fetch tags")
	}
	return out, nil
}

func (c *Client) Tag(ctx context.Context, id int64) (*Tag, error) {
	if err := validateID(id); err != nil {
		return nil, c.fail(ctx, "tag", err, "Failed to fetch tag")
	}
	var out Tag
	r := c.endpoints.Tag
	if err := c.call(ctx, r, r.withID(id), nil, &out); err != nil {
		return nil, c.fail(ctx, "tag", fmt.Errorf("get tag %d: %w", id, err), "Failed to fetch tag")
	}
	return &out, nil
}

// UpdateTag sends a partial update. At least one field must be set.
func (c *Client) UpdateTag(ctx context.Context, id int64, in UpdateTagRequest) (*Tag, error) {
	rules := []validator.Rule{validator.Positive("id", id)}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
		rules = append(rules, validator.Required("name", name), validator.MaxLen("name", name, 100))
	}
	if in.TypeID != nil {
		rules = append(rules, validator.Positive("typeId", *in.TypeID))
	}
	if in.Name == nil && in.TypeID == nil {
		rules = append(rules, validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "tag", Message: "has nothing to update", Code: "validation.empty_update"},
		})
	}
	if err := validator.Apply(rules...); err != nil {
		return nil, c.fail(ctx, "update_tag", err, "Failed to update tag")
	}

	var out Tag
	r := c.endpoints.UpdateTag
	if err := c.call(ctx, r, r.withID(id), in, &out); err != nil {
		return nil, c.fail(ctx, "update_tag", fmt.Errorf("update tag %d: %w", id, err), "Failed to update tag")
	}
	return &out, nil
}

func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return c.fail(ctx, "delete_tag", err, "Failed to delete tag")
	}
	r := c.endpoints.DeleteTag
	if err := c.call(ctx, r, r.withID(id), nil, nil); err != nil {
		return c.fail(ctx, "delete_tag", fmt.Errorf("delete tag %d: %w", id, err), "Failed to delete tag")
	}
	return nil
}

// TagsByType returns tags grouped by content type.
func (c *Client) TagsByType(ctx context.Context) (*TagsResponse, error) {
	var out TagsResponse
	r := c.endpoints.TagsByType
	if err := c.call(ctx, r, r.Path, nil, &out); err != nil {
		return nil, c.fail(ctx, "tags_by_type", fmt.Errorf("tags by type: %w", err), "Failed to fetch tags by type")
	}
	return &out, nil
}
