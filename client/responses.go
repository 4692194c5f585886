package client

import (
	"fmt"
	"net/http"
)

type SubmitAnswer struct {
	FieldID  uint   `json:"fieldId"`
	Response string `json:"response"`
}

// SubmitResponse posts a submission against a form. Works without a session;
// the share-link flow calls this anonymously.
func (c *Client) SubmitResponse(formID uint, answers []SubmitAnswer) (*Submission, error) {
	body := map[string]any{"formId": formID, "fieldResponses": answers}

	env, err := c.do(http.MethodPost, "/responses", nil, body)

	if err != nil {
		return nil, err
	}

	submission, err := decodeData[Submission](env)

	if err != nil {
		return nil, err
	}

	return &submission, nil
}

func (c *Client) ListFormResponses(formID uint, opts ListOptions) ([]Submission, Meta, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/responses/form/%d", formID), opts.values(), nil)

	if err != nil {
		return nil, Meta{}, err
	}

	submissions, err := decodeData[[]Submission](env)

	if err != nil {
		return nil, Meta{}, err
	}

	meta, err := decodeMeta(env)

	return submissions, meta, err
}

func (c *Client) GetResponse(id uint) (*Submission, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/responses/%d", id), nil, nil)

	if err != nil {
		return nil, err
	}

	submission, err := decodeData[Submission](env)

	if err != nil {
		return nil, err
	}

	return &submission, nil
}

func (c *Client) DeleteResponse(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/responses/%d", id), nil, nil)
	return err
}
