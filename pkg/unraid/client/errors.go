package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoData is returned for a well-formed envelope that carries neither
// data nor errors.
var ErrNoData = errors.New("no data returned from graphql query")

// TransportError wraps a network-level failure reaching the endpoint.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a failure to decode the response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode graphql response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GraphQLError carries all errors reported by the server for one query.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql errors: " + strings.Join(e.Messages, ", ")
}

// ContainerNotFoundError is returned when no container matches a
// user-entered name.
type ContainerNotFoundError struct {
	Name string
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("container %q not found", e.Name)
}
