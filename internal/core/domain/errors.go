package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrUploadNotFound is an error thrown when an upload does not exist or belongs to someone else
var ErrUploadNotFound = errors.New("upload not found")

// ErrUserNotFound is an error thrown when user is not found
var ErrUserNotFound = errors.New("user not found")

// ErrValidation is the parent of every upload validation error
var ErrValidation = errors.New("validation error")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("only CSV files are allowed")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrEmptyFile is an error thrown when no bytes were uploaded
var ErrEmptyFile = errors.New("file is empty")

// ErrInvalidTransition is an error thrown when the current status does not allow the requested one
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrQueueFull is an error thrown when a job cannot be accepted without blocking
var ErrQueueFull = errors.New("task queue full")

// ErrQueueClosed is an error thrown when enqueueing after shutdown
var ErrQueueClosed = errors.New("task queue closed")

// ErrEnqueueFailed is an error thrown when an accepted upload could not be scheduled
var ErrEnqueueFailed = errors.New("could not schedule processing")

// ErrUnknownJobType is an error thrown when a worker receives a job it cannot run
var ErrUnknownJobType = errors.New("unknown job type")

// ErrUnauthenticated is an error thrown when credentials are missing or invalid
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrObjectNotFound is an error thrown when the stored csv is missing
var ErrObjectNotFound = errors.New("object not found")
