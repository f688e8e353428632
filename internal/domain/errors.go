package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// CorruptDataError marks inventory records that fail integrity checks
// (admin-entered data, not caller input). Surfaced as a generic server error.
type CorruptDataError struct {
	Resource string
	Msg      string
}

func (e CorruptDataError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("corrupt %s data: %s", e.Resource, e.Msg)
	}
	return fmt.Sprintf("corrupt %s data", e.Resource)
}

// GatewayError wraps failures talking to the payment provider.
type GatewayError struct {
	Op  string
	Err error
}

func (e GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("payment gateway %s failed", e.Op)
}

func (e GatewayError) Unwrap() error { return e.Err }

// SignatureError marks a webhook whose signature did not verify.
// Never triggers any state change.
type SignatureError struct {
	Err error
}

func (e SignatureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("webhook signature verification failed: %v", e.Err)
	}
	return "webhook signature verification failed"
}

func (e SignatureError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsCorruptData(err error) bool {
	var target CorruptDataError
	return errors.As(err, &target)
}

func IsGateway(err error) bool {
	var target GatewayError
	return errors.As(err, &target)
}

func IsSignature(err error) bool {
	var target SignatureError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
