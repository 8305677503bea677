// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Formatter turns an error into the parts of an HTTP response.
//
//	f := errors.NewRFC9457("https://waypoint.example/problems")
//	errors.Write(w, req, f, err)
type Formatter interface {
	Format(req *http.Request, err error) Response
}

// Response is a formatted error response.
type Response struct {
	Status      int
	ContentType string
	Body        any         // Marshaled as JSON by Write
	Headers     http.Header // Optional extra headers
}

// ErrorType is implemented by errors that choose their HTTP status.
type ErrorType interface {
	error
	HTTPStatus() int
}

// ErrorDetails is implemented by errors that carry structured details,
// such as the route and parameter of an assembly failure.
type ErrorDetails interface {
	error
	Details() any
}

// ErrorCode is implemented by errors with a machine-readable code.
type ErrorCode interface {
	error
	Code() string
}

// NewRFC9457 returns an RFC 9457 formatter. baseURL is prepended to error
// codes to build problem type URIs.
func NewRFC9457(baseURL string) *RFC9457 {
	return &RFC9457{BaseURL: baseURL}
}

// NewSimple returns a formatter producing {"error": ..., "code": ...} bodies.
func NewSimple() *Simple {
	return &Simple{}
}

// WithStatus wraps err with an explicit HTTP status.
// A nil err reads as the status text.
func WithStatus(err error, status int) error {
	return &statusError{err: err, status: status}
}

type statusError struct {
	err    error
	status int
}

func (e *statusError) Error() string {
	if e.err == nil {
		return http.StatusText(e.status)
	}

	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func (e *statusError) HTTPStatus() int {
	return e.status
}

// Write formats err with f and writes it to w.
func Write(w http.ResponseWriter, req *http.Request, f Formatter, err error) error {
	resp := f.Format(req, err)

	h := w.Header()
	for k, values := range resp.Headers {
		for _, v := range values {
			h.Add(k, v)
		}
	}
	h.Set("Content-Type", resp.ContentType)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(resp.Status)

	if resp.Body == nil {
		return nil
	}
	if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
		return fmt.Errorf("encode error response: %w", err)
	}

	return nil
}

// statusOf resolves the status of err: resolver first, then ErrorType,
// then 500.
func statusOf(err error, resolver func(error) int) int {
	if resolver != nil {
		return resolver(err)
	}
	if typed, ok := asType[ErrorType](err); ok {
		return typed.HTTPStatus()
	}

	return http.StatusInternalServerError
}
