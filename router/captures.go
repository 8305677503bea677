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

package router

// Capture is one captured parameter. Valid is false for a null capture: a
// path parameter in an optional group that did not match, or a declared
// query parameter that was not supplied.
type Capture struct {
	Name  string
	Value string
	Valid bool
}

// Captures holds the parameters captured by a match, in order: path
// parameters first, then declared query parameters.
type Captures struct {
	entries []Capture
}

func (c *Captures) set(name, value string, valid bool) {
	for i := range c.entries {
		if c.entries[i].Name == name {
			c.entries[i] = Capture{Name: name, Value: value, Valid: valid}
			return
		}
	}
	c.entries = append(c.entries, Capture{Name: name, Value: value, Valid: valid})
}

// Get returns the value of name. ok is false when name was not captured
// or is null.
func (c Captures) Get(name string) (value string, ok bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e.Value, e.Valid
		}
	}

	return "", false
}

// Value returns the value of name, or "" when it is absent or null.
func (c Captures) Value(name string) string {
	v, _ := c.Get(name)
	return v
}

// Has reports whether name was captured, null or not.
func (c Captures) Has(name string) bool {
	for _, e := range c.entries {
		if e.Name == name {
			return true
		}
	}

	return false
}

// Names returns the captured names in order.
func (c Captures) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}

	return names
}

// Values returns the non-null captures.
func (c Captures) Values() map[string]string {
	values := make(map[string]string, len(c.entries))
	for _, e := range c.entries {
		if e.Valid {
			values[e.Name] = e.Value
		}
	}

	return values
}

// Entries returns all captures in order, null ones included.
func (c Captures) Entries() []Capture {
	return append([]Capture(nil), c.entries...)
}

// Len returns the number of captures.
func (c Captures) Len() int {
	return len(c.entries)
}
