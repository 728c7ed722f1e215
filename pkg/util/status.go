package util

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusWrap prepends a string to the message of an existing error,
// retaining its code. Errors that are not gRPC statuses are converted
// to ones having code UNKNOWN.
func StatusWrap(err error, msg string) error {
	return StatusWrapWithCode(err, status.Code(err), msg)
}

// StatusWrapf is identical to StatusWrap, except that the prefix is
// created using a format string.
func StatusWrapf(err error, format string, args ...any) error {
	return StatusWrap(err, fmt.Sprintf(format, args...))
}

// StatusWrapWithCode prepends a string to the message of an existing
// error, while replacing its code. This is used when an error that
// originates from an embedded dataset must not be reported as being
// caused by the caller.
func StatusWrapWithCode(err error, code codes.Code, msg string) error {
	p := status.Convert(err).Proto()
	p.Code = int32(code)
	p.Message = msg + ": " + p.Message
	return status.ErrorProto(p)
}

// StatusWrapfWithCode is identical to StatusWrapWithCode, except that
// the prefix is created using a format string.
func StatusWrapfWithCode(err error, code codes.Code, format string, args ...any) error {
	return StatusWrapWithCode(err, code, fmt.Sprintf(format, args...))
}
