package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseNotPremium   = errors.New("course is not a premium course")
	ErrQuizNotFound       = errors.New("no quiz defined for this material")
	ErrThreadNotFound     = errors.New("thread not found")
	ErrReplyNotFound      = errors.New("reply not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPaymentProvider    = errors.New("payment provider error")
)
