/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rpmine

import (
	"io"

	"github.com/rulego/rpmine/logger"
)

// Option modifies the default behavior of a PatternFinder.
type Option func(*PatternFinder)

// WithLogger sets a custom logger for the whole library.
func WithLogger(log logger.Logger) Option {
	return func(f *PatternFinder) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the level of the default logger.
//
// Example:
//
//	finder, _ := rpmine.New(tdb, 2, 3, 2, rpmine.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(f *PatternFinder) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput directs logs to the given writer at the given level.
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(f *PatternFinder) {
		logger.SetDefault(logger.New(level, output))
	}
}

// WithDiscardLog disables all log output.
func WithDiscardLog() Option {
	return func(f *PatternFinder) {
		logger.SetDefault(logger.NewDiscard())
	}
}

// WithCondition installs an expr-lang filter evaluated against every
// transaction before mining. The expression sees "timestamp" and "items".
//
// Example:
//
//	// only mine transactions that contain item "g"
//	rpmine.WithCondition(`"g" in items`)
func WithCondition(expression string) Option {
	return func(f *PatternFinder) {
		f.condExpr = expression
	}
}

// WithWorkers mines independent top-level branches on a goroutine pool of
// the given size. The result set is identical to a serial run; only the
// order of internal work changes.
func WithWorkers(n int) Option {
	return func(f *PatternFinder) {
		f.workers = n
	}
}

// WithBoundaryGaps enables the stricter recurrence qualification rule: the
// first recurrence of a pattern must begin within per of the database's
// first timestamp, and the last must end within per of its last timestamp.
// The default follows the reference behavior, where domain boundaries do
// not affect qualification.
func WithBoundaryGaps() Option {
	return func(f *PatternFinder) {
		f.boundary = true
	}
}
