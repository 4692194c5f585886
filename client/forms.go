package client

import (
	"fmt"
	"net/http"
)

// CreateFieldInput is the body for field creation and update. On update, nil
// pointers mean "leave unchanged".
type CreateFieldInput struct {
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

type UpdateFieldInput struct {
	Label    *string   `json:"label,omitempty"`
	Type     *string   `json:"type,omitempty"`
	Options  *[]string `json:"options,omitempty"`
	Required *bool     `json:"required,omitempty"`
}

func (c *Client) ListForms(opts ListOptions) ([]Form, Meta, error) {
	env, err := c.do(http.MethodGet, "/forms", opts.values(), nil)

	if err != nil {
		return nil, Meta{}, err
	}

	forms, err := decodeData[[]Form](env)

	if err != nil {
		return nil, Meta{}, err
	}

	meta, err := decodeMeta(env)

	return forms, meta, err
}

func (c *Client) GetForm(id uint) (*Form, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/forms/%d", id), nil, nil)

	if err != nil {
		return nil, err
	}

	form, err := decodeData[Form](env)

	if err != nil {
		return nil, err
	}

	return &form, nil
}

func (c *Client) CreateForm(title string) (*Form, error) {
	env, err := c.do(http.MethodPost, "/forms", nil, map[string]string{"title": title})

	if err != nil {
		return nil, err
	}

	form, err := decodeData[Form](env)

	if err != nil {
		return nil, err
	}

	return &form, nil
}

func (c *Client) UpdateForm(id uint, title string) (*Form, error) {
	env, err := c.do(http.MethodPatch, fmt.Sprintf("/forms/%d", id), nil, map[string]string{"title": title})

	if err != nil {
		return nil, err
	}

	form, err := decodeData[Form](env)

	if err != nil {
		return nil, err
	}

	return &form, nil
}

func (c *Client) DeleteForm(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/forms/%d", id), nil, nil)
	return err
}

func (c *Client) ListFields(formID uint, opts ListOptions) ([]Field, Meta, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/forms/%d/fields", formID), opts.values(), nil)

	if err != nil {
		return nil, Meta{}, err
	}

	fields, err := decodeData[[]Field](env)

	if err != nil {
		return nil, Meta{}, err
	}

	meta, err := decodeMeta(env)

	return fields, meta, err
}

func (c *Client) CreateField(formID uint, input CreateFieldInput) (*Field, error) {
	env, err := c.do(http.MethodPost, fmt.Sprintf("/forms/%d/fields", formID), nil, input)

	if err != nil {
		return nil, err
	}

	field, err := decodeData[Field](env)

	if err != nil {
		return nil, err
	}

	return &field, nil
}

func (c *Client) UpdateField(formID, fieldID uint, input UpdateFieldInput) (*Field, error) {
	env, err := c.do(http.MethodPatch, fmt.Sprintf("/forms/%d/fields/%d", formID, fieldID), nil, input)

	if err != nil {
		return nil, err
	}

	field, err := decodeData[Field](env)

	if err != nil {
		return nil, err
	}

	return &field, nil
}

func (c *Client) DeleteField(formID, fieldID uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/forms/%d/fields/%d", formID, fieldID), nil, nil)
	return err
}

// GetShareLink creates (or fetches the existing) share link for a form.
func (c *Client) GetShareLink(formID uint) (string, error) {
	env, err := c.do(http.MethodPost, fmt.Sprintf("/share/form/%d", formID), nil, nil)

	if err != nil {
		return "", err
	}

	data, err := decodeData[struct {
		ShareID string `json:"shareId"`
	}](env)

	if err != nil {
		return "", err
	}

	return data.ShareID, nil
}

// GetSharedForm fetches a form definition through its public share token. No
// session required.
func (c *Client) GetSharedForm(shareID string) (*SharedForm, error) {
	env, err := c.do(http.MethodGet, "/share/"+shareID, nil, nil)

	if err != nil {
		return nil, err
	}

	shared, err := decodeData[SharedForm](env)

	if err != nil {
		return nil, err
	}

	return &shared, nil
}

func (c *Client) DeleteShareLink(shareID string) error {
	_, err := c.do(http.MethodDelete, "/share/"+shareID, nil, nil)
	return err
}
