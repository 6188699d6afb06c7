// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds sentinel errors and the error types shared by every layer:
// ValidationError, RepositoryError and ServiceError.
package domain
