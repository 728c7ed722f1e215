package http

import (
	"net/http"

	"github.com/charmbracelet/log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// StatusCodeFromGRPCCode returns the HTTP status code that corresponds
// to a gRPC status code. The HTTP status codes returned by this
// function correspond to the values documented in the Protobuf
// definitions of the Code enum:
//
// https://github.com/googleapis/googleapis/blob/master/google/rpc/code.proto
func StatusCodeFromGRPCCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.Canceled:
		return 499
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeStatus writes an error to the client as a google.rpc.Status
// message in JSON form.
func writeStatus(w http.ResponseWriter, logger *log.Logger, err error) {
	s := status.Convert(err)
	body, marshalErr := protojson.Marshal(s.Proto())
	if marshalErr != nil {
		logger.Error("Failed to marshal status", "err", marshalErr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	code := StatusCodeFromGRPCCode(s.Code())
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed", "code", s.Code(), "message", s.Message())
	} else {
		logger.Debug("Request rejected", "code", s.Code(), "message", s.Message())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
