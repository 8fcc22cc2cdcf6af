package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/swingnotes/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	logging.Logger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func TestLoggingInterceptor_PassesThroughAndLogs(t *testing.T) {
	rec := &recordingLogger{Logger: logging.Nop()}
	s := &GRPCServer{logger: rec}

	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}
	want := status.Error(codes.NotFound, "unknown service")

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "resp", want
	})

	if resp != "resp" || !errors.Is(err, want) {
		t.Fatalf("unexpected passthrough: %v, %v", resp, err)
	}
	if len(rec.msgs) != 1 {
		t.Fatalf("want 1 log line, got %d", len(rec.msgs))
	}

	var method, code any
	args := rec.args[0]
	for i := 0; i+1 < len(args); i += 2 {
		switch args[i] {
		case "method":
			method = args[i+1]
		case "code":
			code = args[i+1]
		}
	}
	if method != info.FullMethod || code != codes.NotFound.String() {
		t.Fatalf("unexpected log args: %v", args)
	}
}
