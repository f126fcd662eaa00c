package qlik

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup that matched nothing: no app with the given
// name, no stored scripts, or no published counterpart.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// Candidate is one app entry of an ambiguous name match.
type Candidate struct {
	Name string
	ID   string
}

// AmbiguousError reports a name that matched more than one app and no app id
// was supplied to disambiguate.
type AmbiguousError struct {
	Name       string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "multiple apps match %q; pass an app id to disambiguate:", e.Name)
	for _, c := range e.Candidates {
		fmt.Fprintf(&b, "\n  %s (%s)", c.Name, c.ID)
	}
	return b.String()
}

// RemoteError reports a non-success response from the remote API, carrying
// the HTTP status and the response body.
type RemoteError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, body)
}

// DecodeError reports a response body that could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
