// Package acs implements the low-level REST transport shared by the
// Communication Services clients: connection string parsing and the
// HMAC-SHA256 request signing scheme the service requires.
package acs

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrMissingEndpoint is returned when the connection string has no endpoint part.
	ErrMissingEndpoint = errors.New("connection string is missing endpoint")
	// ErrMissingAccessKey is returned when the connection string has no accesskey part.
	ErrMissingAccessKey = errors.New("connection string is missing accesskey")
)

// ConnectionString is the parsed form of an ACS connection string, e.g.
// "endpoint=https://res.communication.azure.com/;accesskey=<base64>".
type ConnectionString struct {
	// Endpoint is the resource URL without a trailing slash.
	Endpoint string
	// AccessKey is the decoded signing key.
	AccessKey []byte
}

// ParseConnectionString parses a semicolon-separated connection string.
// Key order does not matter and keys are matched case-insensitively.
func ParseConnectionString(raw string) (ConnectionString, error) {
	var cs ConnectionString

	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// The accesskey value is base64 and may itself contain '=',
		// so only split on the first one.
		key, value, found := strings.Cut(part, "=")
		if !found {
			return ConnectionString{}, fmt.Errorf("malformed connection string segment %q", key)
		}

		switch strings.ToLower(key) {
		case "endpoint":
			cs.Endpoint = strings.TrimRight(value, "/")
		case "accesskey":
			decoded, err := base64.StdEncoding.DecodeString(value)
			if err != nil {
				return ConnectionString{}, fmt.Errorf("decode accesskey: %w", err)
			}
			cs.AccessKey = decoded
		}
	}

	if cs.Endpoint == "" {
		return ConnectionString{}, ErrMissingEndpoint
	}
	if _, err := url.Parse(cs.Endpoint); err != nil {
		return ConnectionString{}, fmt.Errorf("invalid endpoint: %w", err)
	}
	if len(cs.AccessKey) == 0 {
		return ConnectionString{}, ErrMissingAccessKey
	}

	return cs, nil
}
