package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (allowed: %q, %q)", raw, FormatJSON, FormatYAML)
	}
}

// Label is the upper-case name used in console headings.
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

type EncodeError struct {
	Format Format
	Cause  error
}

func (e *EncodeError) Error() string {
	if e == nil {
		return "serialization failed"
	}
	return fmt.Sprintf("serialize %s: %v", e.Format, e.Cause)
}

func (e *EncodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Encode renders v as indented text. The result has no trailing newline.
func Encode(v any, f Format) (string, error) {
	switch f {
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", &EncodeError{Format: FormatJSON, Cause: err}
		}
		return string(data), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return "", &EncodeError{Format: f, Cause: err}
		}
		if err := enc.Close(); err != nil {
			return "", &EncodeError{Format: f, Cause: err}
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	default:
		return "", &EncodeError{Format: f, Cause: fmt.Errorf("unsupported format %q", f)}
	}
}
