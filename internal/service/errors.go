package service

import "errors"

// Raised failures represent misuse by the calling layer; routine outcomes
// like a bad join code travel through JoinResult instead.
var (
	// ErrNameRequired reports a login for an unknown email without the
	// display name registration needs.
	ErrNameRequired = errors.New("nombre requerido para nuevos usuarios")

	// ErrUserNotFound reports an update against a user id that does not
	// exist.
	ErrUserNotFound = errors.New("usuario no encontrado")
)
