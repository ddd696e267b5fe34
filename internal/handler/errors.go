// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress makes NewHandlers fail at startup when the server has
// nowhere to listen.
var errNoHTTPAddress = errors.New("notes handlers: http address is empty")
