// Package cli implements the "notes" command-line client. The identity token
// obtained at signup or login is kept in a file between invocations so that
// later commands run as the same user until the token expires.
package cli
