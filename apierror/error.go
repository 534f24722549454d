// Package apierror recovers structured detail from the error messages the CRM
// HTTP client produces, and defines the errors of the bulk upload layer.
//
// The vendor message format is not documented. Parse only understands the
// shape observed in practice:
//
//	Client error: `POST https://host/v1/contact` resulted in a `400 Bad Request` response:
//	{"error":"Bad Request","message":"..."}
//
// Anything else keeps the original message and leaves every derived field empty.
package apierror

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"contact-mapper/utils"
)

// Kind tells which side of the exchange failed.
type Kind string

const (
	KindUnknown Kind = ""
	KindClient  Kind = "CLIENT"
	KindServer  Kind = "SERVER"
)

// Detail is the structured view of a vendor error.
type Detail interface {
	error

	Kind() Kind
	Action() string
	Resource() string
	Response() string
	Reason() string
	Message() string
	Original() string
	Code() int
}

var _ Detail = (*Error)(nil)

// segments is the number of backtick separated parts of a parseable message.
const segments = 5

var fragmentRe = regexp.MustCompile(`\{"(\s|\w|\n|:|\.|,|")+"\}`)

// Error is a vendor error with whatever detail could be recovered.
type Error struct {
	kind     Kind
	action   string
	resource string
	response string
	reason   string
	message  string
	original string
	code     int
	parsed   bool
	cause    error
}

// Parse extracts detail from message. It never fails: a message of an
// unexpected shape yields an Error carrying only the original text and code.
func Parse(message string, code int) *Error {
	e := &Error{
		message:  message,
		original: message,
		code:     code,
	}

	parts := strings.Split(message, "`")
	if len(parts) != segments {
		return e
	}

	e.parsed = true

	switch {
	case strings.Contains(parts[0], "Client"):
		e.kind = KindClient
	case strings.Contains(parts[0], "Server"):
		e.kind = KindServer
	}

	e.action, e.resource = utils.Unpack2(strings.Fields(parts[1]))
	e.response = parts[3]
	e.parseFragment(parts[4])

	return e
}

// FromError converts err into an *Error. An *Error already in the chain is
// returned as is; otherwise err's message is parsed and err is kept as the cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	code := 0

	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		code = coder.StatusCode()
	}

	e = Parse(err.Error(), code)
	e.cause = err

	return e
}

type fragment struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
	Code    any    `json:"code"`
}

func (e *Error) parseFragment(s string) {
	// a missing fragment empties the message
	e.message = ""

	raw := fragmentRe.FindString(s)
	if raw == "" {
		return
	}

	var f fragment
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &f); err != nil {
		return
	}

	e.message = f.Message

	switch {
	case f.Error != nil:
		e.reason = fmt.Sprint(f.Error)
	case f.Code != nil:
		e.reason = fmt.Sprint(f.Code)
	}
}

func (e *Error) Error() string {
	if e.message != "" {
		return e.message
	}

	return e.original
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind       { return e.kind }
func (e *Error) Action() string   { return e.action }
func (e *Error) Resource() string { return e.resource }
func (e *Error) Response() string { return e.response }
func (e *Error) Reason() string   { return e.reason }
func (e *Error) Message() string  { return e.message }
func (e *Error) Original() string { return e.original }
func (e *Error) Code() int        { return e.code }

// Parsed reports whether message had the expected shape.
func (e *Error) Parsed() bool { return e.parsed }

// SetMessage replaces the message, e.g. with a friendlier one.
func (e *Error) SetMessage(message string) { e.message = message }

// SetReason replaces the reason.
func (e *Error) SetReason(reason string) { e.reason = reason }
