/**
 * Copyright (c) 2019, The Artemis Authors.
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

package handler

import (
	"fmt"
	"io"
	"io/ioutil"
	"mime"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// getOneValue returns the value associated with key in values. Return an empty string if there's
// none and an error if there're multiple.
func getOneValue(values url.Values, key string) (string, error) {
	v := values[key]
	switch len(v) {
	case 0:
		return "", nil
	case 1:
		return v[0], nil
	default:
		return "", fmt.Errorf(`multiple values are provided to "%s", but only one expected`, key)
	}
}

func parseRequestFromValues(r *http.Request, values url.Values) (*HTTPRequest, error) {
	var (
		req HTTPRequest
		err error
	)

	if req.Query, err = getOneValue(values, "query"); err != nil {
		return nil, &HTTPRequestParseError{Request: r, Err: err}
	}
	if req.OperationName, err = getOneValue(values, "operationName"); err != nil {
		return nil, &HTTPRequestParseError{Request: r, Err: err}
	}

	variables, err := getOneValue(values, "variables")
	if err != nil {
		return nil, &HTTPRequestParseError{Request: r, Err: err}
	}

	if len(variables) > 0 {
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(variables, &req.Variables); err != nil {
			return nil, &HTTPRequestParseError{
				Request: r,
				Err:     errors.Wrap(err, "invalid variables"),
			}
		}
	}

	return &req, nil
}

// HTTPRequest contains result values of ParseHTTPRequest.
type HTTPRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// HTTPRequestParseError is returned by ParseHTTPRequest when parsing failed.
type HTTPRequestParseError struct {
	Request *http.Request
	Err     error
}

// Error implements Go's error interface.
func (err *HTTPRequestParseError) Error() string {
	return err.Err.Error()
}

// Cause returns the underlying error for errors.Cause.
func (err *HTTPRequestParseError) Cause() error {
	return err.Err
}

// ErrRequestBodyTooLarge is the cause of the HTTPRequestParseError returned by ParseHTTPRequest
// when request body exceeds maxBodySize.
var ErrRequestBodyTooLarge = errors.New("request body is too large")

// ParseHTTPRequest parses a GraphQL request from a http.Request object. The query is read from the
// URL for GET and from body for POST. For POST, the body is decoded according to its content
// type: "application/json" (or no content type), "application/graphql" and
// "application/x-www-form-urlencoded". At most maxBodySize bytes are read from body.
//
// Requests with other methods or content types result in an empty HTTPRequest.
func ParseHTTPRequest(r *http.Request, maxBodySize uint) (*HTTPRequest, error) {
	switch r.Method {
	case http.MethodGet:
		values := r.Form
		if values == nil {
			var err error
			values, err = url.ParseQuery(r.URL.RawQuery)
			if err != nil {
				return nil, &HTTPRequestParseError{Request: r, Err: err}
			}
		}
		return parseRequestFromValues(r, values)

	case http.MethodPost:
		// Error is ignored. An invalid content type is treated as absent.
		contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

		if contentType == "application/x-www-form-urlencoded" && r.Form != nil {
			return parseRequestFromValues(r, r.Form)
		}

		body, err := ioutil.ReadAll(io.LimitReader(r.Body, int64(maxBodySize)+1))
		if err != nil {
			return nil, &HTTPRequestParseError{Request: r, Err: err}
		}
		if len(body) > int(maxBodySize) {
			return nil, &HTTPRequestParseError{Request: r, Err: ErrRequestBodyTooLarge}
		}

		// See https://github.com/graphql/express-graphql/blob/8826952/src/parseBody.js for the
		// supported content-type.
		switch contentType {
		case "application/graphql":
			return &HTTPRequest{
				Query: string(body),
			}, nil

		case "application/x-www-form-urlencoded":
			values, err := url.ParseQuery(string(body))
			if err != nil {
				return nil, &HTTPRequestParseError{Request: r, Err: err}
			}
			return parseRequestFromValues(r, values)

		case "", "application/json":
			var req HTTPRequest
			if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &req); err != nil {
				return nil, &HTTPRequestParseError{
					Request: r,
					Err:     errors.Wrap(err, "invalid JSON body"),
				}
			}
			return &req, nil
		}
	}

	return &HTTPRequest{}, nil
}
