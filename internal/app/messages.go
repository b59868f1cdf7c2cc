// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

// Package app contains shared application-layer constants used across the
// Faith Dive server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgMissingReference is returned when a verse lookup arrives without
	// a reference path segment.
	MsgMissingReference = "reference parameter is required"

	// MsgMissingQuery is returned when a search request omits the q query
	// parameter.
	MsgMissingQuery = "q query parameter is required"

	// MsgMissingTranslationID is returned when a verse lookup omits the
	// bible_id query parameter.
	MsgMissingTranslationID = "bible_id query parameter is required"

	// MsgNoTranslations is returned when the upstream translation
	// catalogue is unavailable or empty.
	MsgNoTranslations = "Unable to fetch translations"

	// MsgEndpointNotFound is returned for any unknown path under /api.
	MsgEndpointNotFound = "API endpoint not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
