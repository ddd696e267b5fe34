// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is what cmd/client drives: one invocation, one sub-command.
type Client interface {
	// Run executes the sub-command named by args[0] with the remaining
	// arguments as its flags and operands.
	Run(ctx context.Context, args []string) error
}
