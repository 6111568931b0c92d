package webframe

import (
	"errors"
	"strings"
)

var errMalformedRequestLine = errors.New("malformed request line")

// requestLine is the parsed first line of an HTTP request.
type requestLine struct {
	method  string
	target  string
	version string
}

// parseRequestLine splits "METHOD TARGET VERSION".
// Anything other than exactly three whitespace separated tokens is rejected.
func parseRequestLine(line string) (requestLine, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return requestLine{}, errMalformedRequestLine
	}

	return requestLine{
		method:  parts[0],
		target:  parts[1],
		version: parts[2],
	}, nil
}
