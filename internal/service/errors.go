package service

import "errors"

// Kind classifies a failure the HTTP layer can report to the client.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a client-facing failure. Message is safe to show to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	ErrUserExists         = NewError(KindConflict, "User already exists")
	ErrPasswordTooLong    = NewError(KindValidation, "Password must be at most 72 bytes")
	ErrInvalidCredentials = NewError(KindUnauthenticated, "Invalid email or password")
	ErrTokenFailed        = NewError(KindUnauthenticated, "Not authorized, token failed")
	ErrUserNotFound       = NewError(KindUnauthenticated, "Not authorized, user not found")

	ErrPostNotFound    = NewError(KindNotFound, "Post not found")
	ErrCommentNotFound = NewError(KindNotFound, "Comment not found")

	ErrForbiddenPostUpdate    = NewError(KindForbidden, "Not authorized to update this post")
	ErrForbiddenPostDelete    = NewError(KindForbidden, "Not authorized to delete this post")
	ErrForbiddenCommentDelete = NewError(KindForbidden, "Not authorized to delete this comment")
)

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
