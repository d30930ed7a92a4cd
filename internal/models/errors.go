package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Response messages form the closed vocabulary of user-visible outcomes.
const (
	MsgDefaultError       = "Something went wrong"
	MsgCanNotUpdateUser   = "You can not update this user's details"
	MsgCanNotDeleteUser   = "You can not delete this user's account"
	MsgUserUpdated        = "User details updated"
	MsgUserDeleted        = "User account deleted"
	MsgAlreadyFollowing   = "Already following this user"
	MsgNotFollowing       = "You do not follow this user"
	MsgCanNotFollowSelf   = "You can not follow yourself"
	MsgCanNotUnfollowSelf = "You can not unfollow yourself"
	MsgUserCreated        = "User created successfully"
	MsgUserNotFound       = "User not found"
	MsgUserExists         = "Username or email already exists"
	MsgInvalidPassword    = "Invalid password"
	MsgPostCreated        = "Post created successfully"
	MsgPostUpdated        = "Post updated successfully"
	MsgPostDeleted        = "Post deleted successfully"
	MsgPostNotFound       = "Post not found"
	MsgCanNotUpdatePost   = "You can not update this post"
	MsgCanNotDeletePost   = "You can not delete this post"
	MsgPostLiked          = "Post liked"
	MsgPostUnliked        = "Post unliked"
)

// Error codes form a closed enumeration; each maps to exactly one HTTP status
// at the response boundary (see statusForCode).
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func NewInvalidCredentialsError(message string) *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: message}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: MsgDefaultError, Err: err}
}

// statusForCode maps the closed error code set to HTTP status codes. Unknown
// errors are treated as internal.
func statusForCode(code string) int {
	switch code {
	case CodeValidation, CodeInvalidCredentials:
		return fiber.StatusBadRequest
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes the standard failure envelope for err, deriving the
// status from the error code. Internal errors carry the underlying cause in
// the body.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
	}

	body := fiber.Map{
		"success": false,
		"message": appErr.Message,
	}
	if appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}
	return c.Status(statusForCode(appErr.Code)).JSON(body)
}
