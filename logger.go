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

package relay

import (
	"sync/atomic"

	"github.com/jensneuse/abstractlogger"
)

type loggerHolder struct {
	logger abstractlogger.Logger
}

var packageLogger atomic.Value

func init() {
	packageLogger.Store(loggerHolder{abstractlogger.NoopLogger})
}

// SetLogger sets the logger for reporting binding steps and node lookups that resolve to null. The
// default is abstractlogger.NoopLogger. Passing nil restores the default.
func SetLogger(logger abstractlogger.Logger) {
	if logger == nil {
		logger = abstractlogger.NoopLogger
	}
	packageLogger.Store(loggerHolder{logger})
}

// Logger returns the logger set by SetLogger. It is shared by the subpackages.
func Logger() abstractlogger.Logger {
	return packageLogger.Load().(loggerHolder).logger
}
