package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrEmptyRequiredFields = errors.New("title, username and password are required")
	ErrNoRecordID          = errors.New("no record ID was given")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
