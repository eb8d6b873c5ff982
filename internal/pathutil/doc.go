// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides efficient path rendering utilities for composite
// document traversal.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// rendered key paths incrementally without allocating intermediate strings.
// This is particularly useful during traversal where paths are built on each
// descent but only materialized when reporting errors or collecting results.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.PushKey("with")
//	path.PushKey("arbitrary")
//	// ... descend ...
//	path.Pop()
//	path.Pop()
//
//	// Only call String() when the rendered path is needed
//	rendered := path.String() // "$['with']['arbitrary']"
//
// Sequence indices are supported via [PathBuilder.PushIndex]:
//
//	path.PushKey("or")
//	path.PushIndex(0) // produces "$['or'][0]"
//
// Every segment renders in bracket notation so that keys containing dots,
// quotes, or other punctuation stay unambiguous. Single quotes and
// backslashes inside keys are escaped with a backslash.
package pathutil
