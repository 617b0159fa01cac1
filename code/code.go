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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated classification of a guard error.
//
// It is a distinct type (not a raw string) so that packages accepting a
// Code can rely on it being normalized, and so that raw user input is never
// accidentally mixed with canonical values.
//
// Empty codes ("") are NOT allowed. Every guard error carries a non-empty
// code; the transport mappers treat anything unknown as internal.
type Code string

// MinLength and MaxLength bound the accepted length of a canonical code.
const (
	// MinLength rejects ultra-short, ambiguous identifiers like "a" or "x1".
	MinLength = 3

	// MaxLength is generous enough for descriptive codes ("bad_request")
	// while preventing unbounded input from ending up in error payloads.
	MaxLength = 64
)

// codeFmt is the canonical pattern for codes:
// a lowercase letter followed by lowercase letters, digits or underscores.
// The quantifier {2,63} keeps the total length within MinLength..MaxLength;
// adjust it together with those constants.
const codeFmt = `^[a-z][a-z0-9_]{2,63}$`

// codeRe is precompiled so repeated validation does not pay the
// compilation cost on every call.
var codeRe = regexp.MustCompile(codeFmt)

// ErrInvalid is returned when a value cannot be parsed or validated as a
// guard code. Callers and tests can detect format problems with errors.Is.
var ErrInvalid = errors.New("guard: invalid code")

// Code round-trips through text-based encoders (JSON, YAML, flags).
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is never valid on an error; it exists so
// callers can express "no code yet" before classification happens.
var Empty Code = ""

// Parse normalizes and validates a user-provided string, returning the
// canonical Code on success.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse, intended for
// package-level constants and var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings an arbitrary string closer to canonical form using only
// obvious, non-lossy transformations: trim spaces, lowercase, and replace
// '-' with '_'. The result is not guaranteed valid; call Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether c is a canonical code.
// The empty code is invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// normalized and validated before assignment.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrInvalid
	}
	return nil
}
