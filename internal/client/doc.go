// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the on-device store, the offline asset cache
// and the background workers into a single process lifecycle.
package client
