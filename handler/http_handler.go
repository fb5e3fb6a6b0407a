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

// Package handler serves a graphql-go schema over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/botobag/relay/dataloader"
	"github.com/graphql-go/graphql"
	"github.com/jensneuse/abstractlogger"
	jsoniter "github.com/json-iterator/go"
)

// DefaultMaxBodySize is the maximum size of request body read by handler unless MaxBodySize is
// given.
const DefaultMaxBodySize = 10 << 20 // 10MB

// httpHandler implements a http.Handler to serve GraphQL queries from HTTP requests.
type httpHandler struct {
	schema *graphql.Schema
	config httpHandlerConfig
}

// httpHandlerConfig contains configuration for a httpHandler.
type httpHandlerConfig struct {
	maxBodySize     uint
	rootObject      map[string]interface{}
	contextFunc     ContextFunc
	logger          abstractlogger.Logger
	errorPresenter  ErrorPresenter
	resultPresenter ResultPresenter
}

// ContextFunc derives the context for executing query from the HTTP request.
type ContextFunc func(r *http.Request) context.Context

// Option configures httpHandler
type Option func(h *httpHandlerConfig)

// MaxBodySize sets the maximum number of bytes to be read from request body.
func MaxBodySize(size uint) Option {
	return func(h *httpHandlerConfig) {
		h.maxBodySize = size
	}
}

// RootObject sets the value given to the resolvers of the root fields as source.
func RootObject(rootObject map[string]interface{}) Option {
	return func(h *httpHandlerConfig) {
		h.rootObject = rootObject
	}
}

// WithContext sets the function to create context for each request. The default uses
// r.Context().
func WithContext(f ContextFunc) Option {
	return func(h *httpHandlerConfig) {
		h.contextFunc = f
	}
}

// WithDataLoaderManager attaches a new dataloader.Manager to the context of each request so the
// DataLoaders created by relay.ManagedLoader are scoped to the request.
func WithDataLoaderManager() Option {
	return func(h *httpHandlerConfig) {
		contextFunc := h.contextFunc
		h.contextFunc = func(r *http.Request) context.Context {
			ctx := r.Context()
			if contextFunc != nil {
				ctx = contextFunc(r)
			}
			return dataloader.NewContext(ctx, &dataloader.Manager{})
		}
	}
}

// WithLogger sets the logger for reporting the failed requests and executions.
func WithLogger(logger abstractlogger.Logger) Option {
	return func(h *httpHandlerConfig) {
		h.logger = logger
	}
}

// OverrideErrorPresenter overrides DefaultErrorPresenter.
func OverrideErrorPresenter(errorPresenter ErrorPresenter) Option {
	return func(h *httpHandlerConfig) {
		h.errorPresenter = errorPresenter
	}
}

// OverrideResultPresenter overrides DefaultResultPresenter.
func OverrideResultPresenter(resultPresenter ResultPresenter) Option {
	return func(h *httpHandlerConfig) {
		h.resultPresenter = resultPresenter
	}
}

// New creates a net/http.Handler and builds a GraphQL web service to serve queries against the
// schema.
func New(schema *graphql.Schema, opts ...Option) (http.Handler, error) {
	if schema == nil {
		return nil, errMissingSchema
	}

	config := httpHandlerConfig{
		maxBodySize:     DefaultMaxBodySize,
		logger:          abstractlogger.NoopLogger,
		errorPresenter:  DefaultErrorPresenter{},
		resultPresenter: DefaultResultPresenter{},
	}
	for _, opt := range opts {
		opt(&config)
	}

	return &httpHandler{
		schema: schema,
		config: config,
	}, nil
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	config := &h.config

	req, err := ParseHTTPRequest(r, config.maxBodySize)
	if err == nil && len(req.Query) == 0 {
		err = ErrEmptyQuery{Request: r}
	}
	if err != nil {
		config.logger.Debug("handler.ServeHTTP",
			abstractlogger.String("method", r.Method),
			abstractlogger.Error(err))
		config.errorPresenter.Write(w, err)
		return
	}

	ctx := r.Context()
	if config.contextFunc != nil {
		ctx = config.contextFunc(r)
	}

	result := graphql.Do(graphql.Params{
		Schema:         *h.schema,
		RequestString:  req.Query,
		RootObject:     config.rootObject,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		for _, e := range result.Errors {
			config.logger.Debug("handler.ServeHTTP",
				abstractlogger.String("operationName", req.OperationName),
				abstractlogger.String("error", e.Message))
		}
	}

	config.resultPresenter.Write(w, r, result)
}

// ResultPresenter presents an execution result to a http.ResponseWriter.
type ResultPresenter interface {
	Write(w http.ResponseWriter, r *http.Request, result *graphql.Result)
}

// DefaultResultPresenter writes the result in JSON with status 200.
type DefaultResultPresenter struct{}

// Write implements ResultPresenter.
func (DefaultResultPresenter) Write(w http.ResponseWriter, r *http.Request, result *graphql.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(w)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)
	stream.WriteVal(result)
	stream.Flush()
}
