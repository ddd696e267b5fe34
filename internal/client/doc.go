// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the notes API.
//
// [App] turns a sub-command and its flags into calls on an
// [adapter.ServerAdapter] and prints the server's answer as indented JSON.
package client
