// Package common contains shared constants and small helpers used across
// the Health App client packages.
package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme expected by the backend.
const BearerScheme = "Bearer"

// RequestIDHeaderName carries a per-request id for log correlation.
const RequestIDHeaderName = "X-Request-Id"
