// SPDX-License-Identifier: MIT

package tad

import "go.uber.org/zap"

// Option configures runtime concerns of Process and BuildHierarchy that do
// not change the result.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger routes per-window and per-level debug events to l.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, set := range opts {
		set(&o)
	}

	return o
}
