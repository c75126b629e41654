// SPDX-License-Identifier: MIT
// Package: coalescent
//
// errors.go — sentinel errors for the coalescent package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the return site with errors.Wrapf, never baked
//     into the sentinel message.
//   • Build never panics on user input; invariant breakage inside analysis
//     routines is reported as an assertion failure (see package treestat).

package coalescent

import "github.com/cockroachdb/errors"

// ErrInvalidArgument indicates a sample size below 2 or caller-supplied
// arrays of the wrong shape.
var ErrInvalidArgument = errors.New("coalescent: invalid argument")

// ErrNilSource indicates that Build was called without a random source.
var ErrNilSource = errors.New("coalescent: random source is required")

// ErrMalformedTree indicates that parent/time arrays violate a tree invariant
// (multiple roots, cycles, non-positive branch lengths, wrong arity, ...).
var ErrMalformedTree = errors.New("coalescent: malformed tree")

// Method names used as wrapping context.
const (
	methodBuild      = "Build"
	methodFromArrays = "FromArrays"
	methodValidate   = "Validate"
)
