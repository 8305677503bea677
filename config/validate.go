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

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var manifestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("config"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
})

// Validate reports every route and task missing a name, a pattern or a
// command, and every name declared twice.
func (m *Manifest) Validate() error {
	err := manifestValidator().Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	errs := make([]error, len(verrs))
	for i, fe := range verrs {
		errs[i] = fieldError(fe)
	}

	return fmt.Errorf("%w: %w", ErrInvalidManifest, errors.Join(errs...))
}

// fieldError renders fe as "routes[0]: pattern is empty".
func fieldError(fe validator.FieldError) error {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}

	switch fe.Tag() {
	case "unique":
		return fmt.Errorf("%s: duplicate %s", ns, strings.ToLower(fe.Param()))
	case "notblank", "required":
		if i := strings.LastIndex(ns, "."); i >= 0 {
			return fmt.Errorf("%s: %s is empty", ns[:i], ns[i+1:])
		}
		return fmt.Errorf("%s is empty", ns)
	default:
		return fmt.Errorf("%s: failed %s validation", ns, fe.Tag())
	}
}
