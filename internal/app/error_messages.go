// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// silabos-admin HTTP handlers and middleware.
//
// All Msg* constants are the human-readable (Spanish) messages written into
// the "message" field of JSON error responses. Keeping them in one place
// ensures consistent wording throughout the API.
package app

// Authentication and authorization.
const (
	// MsgMissingSessionToken is returned when the request carries neither an
	// Authorization header nor a session cookie.
	MsgMissingSessionToken = "sesión no iniciada"

	// MsgInvalidAuthorizationHeader is returned when the Authorization header
	// is present but is not of the form "Bearer <token>".
	MsgInvalidAuthorizationHeader = "cabecera Authorization inválida"

	// MsgTokenIsExpired is returned when the session token verified correctly
	// but its expiry time has passed.
	MsgTokenIsExpired = "la sesión ha expirado"

	// MsgTokenIsInvalid is returned when the session token cannot be verified.
	MsgTokenIsInvalid = "sesión inválida"

	// MsgMissingIdentityClaims is returned when a verified token does not
	// carry the external id or tenant id of the user.
	MsgMissingIdentityClaims = "la sesión no identifica al usuario"

	// MsgUserNotRegistered is returned when the token identity has no record
	// in the user directory.
	MsgUserNotRegistered = "usuario no registrado"

	// MsgUserInactive is returned when the user account is disabled.
	MsgUserInactive = "usuario inactivo"

	// MsgForbidden is returned when the user category is not admitted by
	// the route.
	MsgForbidden = "no tiene permisos para acceder a este recurso"

	// MsgLoggedOut confirms that the session cookie was cleared.
	MsgLoggedOut = "sesión cerrada"
)

// Resources and request bodies.
const (
	MsgDocenteNotFound  = "docente no encontrado"
	MsgSyllabusNotFound = "sílabo no encontrado"
	MsgNotFound         = "recurso no encontrado"

	// MsgInvalidID is returned when a path identifier is not a positive integer.
	MsgInvalidID = "identificador inválido"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "el cuerpo de la solicitud no es un JSON válido"

	// MsgValidationFailed accompanies the per-field error list of a rejected
	// request body.
	MsgValidationFailed = "datos de entrada inválidos"

	MsgAporteAlreadyExists = "el sílabo ya declara un aporte a ese resultado del programa"
)

// Server side failures. Details never leave the server logs.
const (
	MsgInternalServerError = "error interno del servidor"
	MsgServiceUnavailable  = "servicio no disponible temporalmente, intente nuevamente"
)
