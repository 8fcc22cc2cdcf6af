// Package services implements the account and note operations on top of the
// repositories. Every note operation is scoped to the verified caller.
package services
