/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package relay

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the type and method, such as "relay.ObjectType.Bind".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther         ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindConfiguration                // A Bindable doesn't match the schema it is bound to.
	ErrKindArgument                     // Invalid connection arguments (e.g., negative "first".)
	ErrKindInternal                     // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindConfiguration:
		return "configuration error"
	case ErrKindArgument:
		return "argument error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// An Error describes an error raised by this package. Configuration errors are returned when
// binding resolvers onto a schema which lacks the expected fields. Argument errors are returned
// from connection resolvers and graphql-go reports them as field errors in the response.
//
// Error() includes Op and ErrKind, except that the kind of an argument error is left out since
// graphql-go reports Error() to clients. Format the value with %v to always include the kind. Only
// Message is included when serializing to JSON.
type Error struct {
	// Message describes the error.
	Message string

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

var (
	_ error         = (*Error)(nil)
	_ fmt.Formatter = (*Error)(nil)
)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Pull kind from underlying error.
	if e.Kind == ErrKindOther {
		if prev, ok := e.Err.(*Error); ok {
			e.Kind = prev.Kind
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// IsErrKind returns true if err is an *Error of the given kind.
func IsErrKind(err error, kind ErrKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil, false)
	return b.String()
}

// Format implements fmt.Formatter. The %v verb prints the kind of argument errors which is omitted
// by Error.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		var b strings.Builder
		e.printError(&b, nil, true)
		io.WriteString(f, b.String())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	default:
		io.WriteString(f, e.Error())
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) printError(b *strings.Builder, nextErr *Error, withArgumentKind bool) {
	// If the previous error was also one of ours. Suppress duplications so the message won't contain
	// the same kind twice.
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther && (e.Kind != ErrKindArgument || withArgumentKind) {
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e, withArgumentKind)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(err.Message)
	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("relay.Error", errorMarshaller{})
}
