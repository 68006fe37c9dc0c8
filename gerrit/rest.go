// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gerrit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
)

// REST sends requests through a [Transport] and validates the status code of
// the answer. Every method takes the status codes the endpoint documents as
// success; with none given any 2xx status is accepted. A mismatch yields an
// [*UnexpectedResponseError] and the body is never decoded.
type REST struct {
	transport Transport
}

// NewREST wraps transport.
func NewREST(transport Transport) *REST {
	return &REST{transport: transport}
}

// Get issues a GET request.
func (r *REST) Get(ctx context.Context, path string, expected ...int) (Message, error) {
	return r.send(ctx, http.MethodGet, path, nil, expected)
}

// Put issues a PUT request without a body.
func (r *REST) Put(ctx context.Context, path string, expected ...int) (Message, error) {
	return r.send(ctx, http.MethodPut, path, nil, expected)
}

// PutJSON issues a PUT request with body encoded as JSON.
func (r *REST) PutJSON(ctx context.Context, path string, body any, expected ...int) (Message, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return Message{}, fmt.Errorf("PUT %s: %w", path, err)
	}
	return r.send(ctx, http.MethodPut, path, payload, expected)
}

// PostJSON issues a POST request with body encoded as JSON.
func (r *REST) PostJSON(ctx context.Context, path string, body any, expected ...int) (Message, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return Message{}, fmt.Errorf("POST %s: %w", path, err)
	}
	return r.send(ctx, http.MethodPost, path, payload, expected)
}

// Post issues a POST request without a body.
func (r *REST) Post(ctx context.Context, path string, expected ...int) (Message, error) {
	return r.send(ctx, http.MethodPost, path, nil, expected)
}

// Delete issues a DELETE request.
func (r *REST) Delete(ctx context.Context, path string, expected ...int) (Message, error) {
	return r.send(ctx, http.MethodDelete, path, nil, expected)
}

func (r *REST) send(ctx context.Context, method, path string, payload []byte, expected []int) (Message, error) {
	header := http.Header{}
	header.Set("Accept", "application/json")
	if payload != nil {
		header.Set("Content-Type", "application/json")
	}

	resp, err := r.transport.Do(ctx, &Request{
		Method: method,
		Path:   path,
		Header: header,
		Body:   payload,
	})
	if err != nil {
		return Message{}, err
	}

	if !statusExpected(resp.StatusCode, expected) {
		return Message{}, &UnexpectedResponseError{
			StatusCode: resp.StatusCode,
			Expected:   expected,
			Body:       resp.Body,
		}
	}

	return NewMessage(resp.StatusCode, resp.Body), nil
}

func statusExpected(status int, expected []int) bool {
	if len(expected) == 0 {
		return status >= http.StatusOK && status < http.StatusMultipleChoices
	}
	return slices.Contains(expected, status)
}

func encodeBody(body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return payload, nil
}
