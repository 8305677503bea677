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
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// RFC9457 formats errors as RFC 9457 problem details with Content-Type
// "application/problem+json".
type RFC9457 struct {
	// BaseURL is joined with the error code to form the problem type.
	BaseURL string

	// TypeResolver overrides the problem type. Optional.
	TypeResolver func(err error) string

	// StatusResolver overrides the status. Optional.
	StatusResolver func(err error) int

	// ErrorIDGenerator produces the error_id extension. Optional.
	ErrorIDGenerator func() string

	// DisableErrorID omits the error_id extension.
	DisableErrorID bool
}

// ProblemDetail is an RFC 9457 problem detail object.
// Extensions are marshaled inline next to the standard members.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"-"`
}

var reservedMembers = map[string]bool{
	"type": true, "title": true, "status": true, "detail": true, "instance": true,
}

// MarshalJSON writes extensions inline. Extensions never replace the
// standard members.
func (p ProblemDetail) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extensions)+5)
	for k, v := range p.Extensions {
		if !reservedMembers[k] {
			m[k] = v
		}
	}
	m["type"] = p.Type
	m["title"] = p.Title
	m["status"] = p.Status
	if p.Detail != "" {
		m["detail"] = p.Detail
	}
	if p.Instance != "" {
		m["instance"] = p.Instance
	}

	return json.Marshal(m)
}

// Format builds the problem detail for err. The code and details of err,
// when present, are added as the "code" and "errors" extensions.
func (f *RFC9457) Format(req *http.Request, err error) Response {
	status := statusOf(err, f.StatusResolver)

	p := ProblemDetail{
		Type:       f.problemType(err),
		Title:      http.StatusText(status),
		Status:     status,
		Detail:     err.Error(),
		Extensions: make(map[string]any),
	}
	if req != nil && req.URL != nil {
		p.Instance = req.URL.RequestURI()
	}

	if !f.DisableErrorID {
		if f.ErrorIDGenerator != nil {
			p.Extensions["error_id"] = f.ErrorIDGenerator()
		} else {
			p.Extensions["error_id"] = newErrorID()
		}
	}
	if detailed, ok := asType[ErrorDetails](err); ok {
		p.Extensions["errors"] = detailed.Details()
	}
	if coded, ok := asType[ErrorCode](err); ok {
		p.Extensions["code"] = coded.Code()
	}

	return Response{
		Status:      status,
		ContentType: "application/problem+json; charset=utf-8",
		Body:        p,
	}
}

func (f *RFC9457) problemType(err error) string {
	if f.TypeResolver != nil {
		return f.TypeResolver(err)
	}
	coded, ok := asType[ErrorCode](err)
	if !ok {
		return "about:blank"
	}
	if f.BaseURL == "" {
		return coded.Code()
	}

	return f.BaseURL + "/" + coded.Code()
}

func asType[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)

	return target, ok
}

func newErrorID() string {
	b := make([]byte, 16) //nolint:makezero // rand.Read fills a sized buffer
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("err-%d", time.Now().UnixNano())
	}

	return "err-" + hex.EncodeToString(b)
}
