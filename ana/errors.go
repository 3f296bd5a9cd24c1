// Copyright 2026 The Connecty Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/io"
)

// ErrKind distinguishes the failure categories surfaced by an analysis
// call so callers can react differently to each
type ErrKind int

const (

	// KindGeometry indicates degenerate geometry: empty group,
	// coincident elements, zero total weight, or an empty tension-side
	// row set. Fatal to the call; not retriable
	KindGeometry ErrKind = iota + 1

	// KindConvergence indicates the instantaneous-centre search hit its
	// iteration cap outside tolerance. Callers may retry the analysis
	// with the elastic distributor
	KindConvergence

	// KindUsage indicates a caller contract violation, e.g. requesting
	// ICR with nonzero out-of-plane load or for a non-fillet weld
	KindUsage
)

// Error carries an ErrKind; recover it with errors.As
type Error struct {
	Kind ErrKind
	Msg  string
}

// Error returns the message
func (o *Error) Error() string { return o.Msg }

func geomErr(msg string, prm ...interface{}) *Error {
	return &Error{Kind: KindGeometry, Msg: io.Sf(msg, prm...)}
}

func convErr(msg string, prm ...interface{}) *Error {
	return &Error{Kind: KindConvergence, Msg: io.Sf(msg, prm...)}
}

func usageErr(msg string, prm ...interface{}) *Error {
	return &Error{Kind: KindUsage, Msg: io.Sf(msg, prm...)}
}
