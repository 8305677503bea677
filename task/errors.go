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

package task

import (
	"errors"
	"fmt"
)

var (
	// ErrTaskNotFound indicates that no task is registered under a name.
	ErrTaskNotFound = errors.New("task not found")

	// ErrMalformedToken indicates a task command token that is not a
	// word, a <required> or an [<optional>] parameter.
	ErrMalformedToken = errors.New("malformed task token")

	// ErrInvalidOption indicates an invalid registry configuration.
	ErrInvalidOption = errors.New("invalid task option")
)

// TokenError reports a malformed token in a task command.
type TokenError struct {
	Task  string
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v %q in task %q: expected a word, <required> or [<optional>] parameter", ErrMalformedToken, e.Token, e.Task)
}

func (e *TokenError) Unwrap() error {
	return ErrMalformedToken
}

// Code returns a machine-readable error code.
func (e *TokenError) Code() string {
	return "malformed_token"
}

// NotFoundError reports an unknown task name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrTaskNotFound, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTaskNotFound
}

// Code returns a machine-readable error code.
func (e *NotFoundError) Code() string {
	return "task_not_found"
}
