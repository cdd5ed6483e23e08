// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pickup server handlers and the client's error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// The client matches on them to recover the server's business error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation against the collection schema.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidQuery is returned when a filter, order or limit parameter is
	// malformed or names an undeclared column.
	MsgInvalidQuery = "invalid query"

	// MsgUnknownCollection is returned for a collection the server does not
	// expose.
	MsgUnknownCollection = "unknown collection"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the caller's
	// user id but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the caller writes a row owned by a
	// different user.
	MsgAccessDenied = "access denied"

	// MsgOwnerFilterRequired is returned for deletes that are not restricted
	// to the caller's own rows.
	MsgOwnerFilterRequired = "delete must be filtered by owner"

	// MsgAlreadyExists is returned when a plain insert hits an existing key.
	MsgAlreadyExists = "row already exists"

	// MsgParentNotFound is returned when a row references a missing parent,
	// e.g. joining a game that was deleted.
	MsgParentNotFound = "parent row not found"

	// MsgConstraintViolation is returned when the database rejects a row.
	MsgConstraintViolation = "constraint violation"

	// MsgVersionIsNotSpecified is logged when the server starts without a
	// build version.
	MsgVersionIsNotSpecified = "version is not specified"
)
