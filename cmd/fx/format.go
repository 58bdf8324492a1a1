package main

import (
	"fmt"
	"strings"
)

// Format selects the wire format used for reading or writing documents.
type Format int

const (
	// JSONFormat reads with the tolerant decoder and writes canonical
	// text. Strict JSON is a subset of what the decoder accepts, so
	// this is also the default input format.
	JSONFormat Format = iota
	YAMLFormat
)

func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	default:
		return "json"
	}
}
