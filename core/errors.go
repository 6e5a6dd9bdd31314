package core

import (
	"strings"
)

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorInvalidImage struct {
}

func (e ErrorInvalidImage) Error() string {
	return "Invalid Image URL"
}

func NewErrorInvalidImage() ErrorInvalidImage {
	return ErrorInvalidImage{}
}

type ErrorInvalidRequest struct {
	Message string
}

func (e ErrorInvalidRequest) Error() string {
	return "Invalid Request: " + e.Message
}

func NewErrorInvalidRequest(message string) ErrorInvalidRequest {
	return ErrorInvalidRequest{Message: message}
}

// ErrorAmbiguous carries the candidate names so the caller can disambiguate
type ErrorAmbiguous struct {
	Candidates []string
}

func (e ErrorAmbiguous) Error() string {
	return "Ambiguous Name: " + strings.Join(e.Candidates, ", ")
}

func NewErrorAmbiguous(candidates []string) ErrorAmbiguous {
	return ErrorAmbiguous{Candidates: candidates}
}
