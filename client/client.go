// Package client is a Go client for the Deckform API. It mirrors the web
// app's data layer: a thin typed wrapper per endpoint, a cookie jar carrying
// the session, and a Store that callers update only after a successful
// server response.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// APIError is a non-2xx response decoded into the server's envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Meta is the pagination block accompanying list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

// ListOptions are the query parameters shared by every list endpoint. Zero
// values are omitted and the server applies its defaults.
type ListOptions struct {
	Sort   string
	Search string
	Page   int
	Limit  int
}

func (o ListOptions) values() url.Values {
	values := url.Values{}

	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}
	if o.Search != "" {
		values.Set("search", o.Search)
	}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	return values
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)

	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: 30 * time.Second},
	}, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func (c *Client) roundTrip(method, path string, query url.Values, body any) (*http.Response, error) {
	endpoint := c.baseURL + path

	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, endpoint, reader)

	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

func (c *Client) do(method, path string, query url.Values, body any) (*envelope, error) {
	resp, err := c.roundTrip(method, path, query, body)

	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope

	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// doInto decodes the whole response body into out, for endpoints whose
// payload sits beside the envelope fields rather than under data.
func (c *Client) doInto(method, path string, body any, out any) error {
	resp, err := c.roundTrip(method, path, nil, body)

	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)

	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	return json.Unmarshal(raw, out)
}

func decodeData[T any](env *envelope) (T, error) {
	var out T

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}

	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decoding data: %w", err)
	}

	return out, nil
}

func decodeMeta(env *envelope) (Meta, error) {
	var meta Meta

	if len(env.Meta) == 0 {
		return meta, nil
	}

	if err := json.Unmarshal(env.Meta, &meta); err != nil {
		return meta, fmt.Errorf("decoding meta: %w", err)
	}

	return meta, nil
}
