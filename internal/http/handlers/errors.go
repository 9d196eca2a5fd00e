// Package handlers defines the HTTP-layer error taxonomy used across all
// API endpoints.
//
// The API contract fixes both the envelope shape and the message text per
// status code; clients branch on the numeric code and, in some cases, match
// the message verbatim. Neither may change without breaking existing
// frontends:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "success": false,
//	  "error": 404,
//	  "message": "This Question Not Found"
//	}
//
// No structured detail (field names, validation messages, stack traces) is
// ever returned: a missing row, a malformed filter, and an unreachable
// database are indistinguishable at the boundary. This coarseness is part
// of the contract.
package handlers

import "net/http"

// Fixed per-status messages. The wording (including the grammar) is part of
// the wire contract and is preserved verbatim.
const (
	MsgBadRequest    = "No Categories Has Been Found"
	MsgNotFound      = "This Question Not Found"
	MsgUnprocessable = "Can't Process Your Data"
	MsgServerError   = "There is an Error in Server"
)

// StatusMessage returns the fixed message for one of the four contract
// statuses. Any other status maps to the server-error message.
func StatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	default:
		return MsgServerError
	}
}
