// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming credentials and notes
// before they reach the repositories.
//
// Each validator accepts the value plus an optional list of Field* names;
// only the named rules run, so the same validator serves register (all
// credential rules) and login (presence only), or create and partial update.
// Every failure is a sentinel from errors.go, so callers can match it with
// errors.Is and the HTTP layer can turn it into a 400 detail.
package validators

import "context"

// Validator validates v against the rules selected by fields. An unsupported
// value type yields ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
