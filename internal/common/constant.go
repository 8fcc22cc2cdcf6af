// Package common contains shared constants and sentinel errors used across
// Swing Notes components.
package common

// AuthorizationHeaderName is the HTTP header carrying the identity token.
// The only accepted value format is "Bearer <token>".
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme expected in AuthorizationHeaderName.
const BearerScheme = "Bearer"
