// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errMissingHTTPHandler is returned by NewServer when it has no router
	// or no listen address to bind it to.
	errMissingHTTPHandler = errors.New("notes server: http handler or listen address is missing")
	errNothingToServe     = errors.New("notes server: nothing to serve")
)
