package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// RequireEqualStatus asserts that two errors, assumed to be gRPC
// statuses, have the same code and message.
func RequireEqualStatus(t *testing.T, want, got error) {
	t.Helper()
	wantProto := status.Convert(want).Proto()
	gotProto := status.Convert(got).Proto()
	if !proto.Equal(wantProto, gotProto) {
		t.Fatalf("Not equal:\nWant:\n\n%s\n\nGot:\n\n%s", mustMarshalToString(t, wantProto), mustMarshalToString(t, gotProto))
	}
}

// RequirePrefixedStatus asserts that two errors, assumed to be gRPC
// statuses, have the same code, while the message of the error that was
// obtained only needs to start with the message that was expected.
// This is useful when the tail of the message is produced by a parser
// in another library.
func RequirePrefixedStatus(t *testing.T, want, got error) {
	t.Helper()
	wantProto := status.Convert(want).Proto()
	gotProto := status.Convert(got).Proto()
	require.Equal(t, wantProto.GetCode(), gotProto.GetCode(), "Status codes differ")
	require.Truef(
		t,
		strings.HasPrefix(gotProto.GetMessage(), wantProto.GetMessage()),
		"Want message %#v to have prefix %#v",
		gotProto.GetMessage(),
		wantProto.GetMessage())
}

func mustMarshalToString(t *testing.T, message proto.Message) string {
	s, err := protojson.MarshalOptions{Multiline: true}.Marshal(message)
	if err != nil {
		t.Fatal(err)
	}
	return string(s)
}
