/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package check

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Ident is the canonical, validated identifier of a guard check.
//
// Idents are dot-separated, lowercase identifiers naming the guard chain and
// the check that failed:
//
//   - "argument.null"
//   - "value.nonpositive"
//   - "entity.empty_collection"
//
// They refine the error code the way a machine-readable cause refines a
// classification: the code answers "what kind of failure is this?", the
// ident answers "which exact check tripped?". Mappers and log pipelines can
// match on ident prefixes ("argument", "entity.empty_string") without
// parsing human-readable messages.
type Ident string

// MinLength and MaxLength bound the accepted length of a non-empty ident.
// The empty ident is allowed separately and means "no check recorded".
const (
	MinLength = 3
	MaxLength = 64
)

// identFmt accepts one to three dot-separated segments, each a lowercase
// letter followed by lowercase letters, digits or underscores. Empty
// segments, uppercase and slashes are rejected.
const identFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,2}$`

var identRe = regexp.MustCompile(identFmt)

var (
	// ErrIdentFormat is returned when an ident does not conform to the
	// canonical dot-separated format.
	ErrIdentFormat = errors.New("guard: invalid check ident format")
	// ErrIdentLength is returned when a non-empty ident is too short or
	// too long.
	ErrIdentLength = errors.New("guard: invalid check ident length")
)

var (
	_ encoding.TextMarshaler   = (*Ident)(nil)
	_ encoding.TextUnmarshaler = (*Ident)(nil)
)

// Empty is the zero-value ident, meaning "not recorded". It is valid to
// store on an error; mappers simply skip ident-based rules for it.
var Empty Ident = ""

// Normalize brings an arbitrary string closer to canonical ident form:
// trim spaces, lowercase, '/' to '.', '-' to '_'. The result is not
// guaranteed valid; call Parse or Validate afterwards.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates a user-provided string. The empty string
// parses to Empty without error; idents are the optional part of the guard
// error model.
func Parse(s string) (Ident, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Ident(s), nil
}

// MustParse is the panic-on-error variant of Parse for declaring
// package-level ident constants. Unlike Parse it rejects the empty string:
// an empty constant is almost always a programmer error.
func MustParse(s string) Ident {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if id == Empty {
		panic("guard: empty ident in MustParse")
	}
	return id
}

// Validate reports whether id is canonical. The empty ident is valid here;
// callers that require a recorded check must test against Empty themselves.
func Validate(id Ident) error {
	if id == Empty {
		return nil
	}
	return validate(string(id))
}

// String returns the canonical string representation of the ident.
func (id Ident) String() string {
	return string(id)
}

// MarshalText implements encoding.TextMarshaler. The empty ident marshals
// to an empty byte slice so optional fields survive JSON/YAML encoding.
func (id Ident) MarshalText() ([]byte, error) {
	if err := Validate(id); err != nil {
		return nil, err
	}
	if id == Empty {
		return []byte{}, nil
	}
	return []byte(id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Whitespace-only input
// produces Empty.
func (id *Ident) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrIdentLength
	}
	if !identRe.MatchString(s) {
		return ErrIdentFormat
	}
	return nil
}
