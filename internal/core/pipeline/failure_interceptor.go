// Package pipeline wraps use-case handlers with the command failure safety
// net: no unexpected error leaves a wrapped operation unrecorded.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
	portsrepo "github.com/expensescontrol/expenses_control_app/internal/core/ports/repositories"
	"github.com/expensescontrol/expenses_control_app/internal/middleware"
)

// maxRequestSnapshotLen bounds the persisted request snapshot, matching the
// command_failures column width.
const maxRequestSnapshotLen = 4000

// Handler is the rest of the pipeline: a use-case invocation for a typed
// request.
type Handler[Req any, Res any] func(ctx context.Context, req Req) (Res, error)

// Response is the contract every use-case response satisfies so the
// interceptor can convert a captured failure into a safe reply.
type Response interface {
	MarkInternalFailure(traceID string)
	IsSuccess() bool
}

// FailureInterceptor persists a forensic record for every unexpected failure
// and converts it into a generic internal-error response. Business-rule
// failures travel inside successful handler returns and pass through
// untouched.
type FailureInterceptor struct {
	failures    portsrepo.CommandFailureRepository
	logRequests bool
}

// NewFailureInterceptor creates the interceptor. logRequests enables
// request/response debug logging and is externally configured.
func NewFailureInterceptor(failures portsrepo.CommandFailureRepository, logRequests bool) *FailureInterceptor {
	return &FailureInterceptor{failures: failures, logRequests: logRequests}
}

// Execute runs the handler for req. On a returned error or a panic it
// captures exactly one CommandFailure and returns a response carrying only
// the trace id, classified as an internal error.
func Execute[Req any, Res any, PRes interface {
	Response
	*Res
}](ctx context.Context, i *FailureInterceptor, req Req, next Handler[Req, PRes]) PRes {
	logger := middleware.GetLoggerFromCtx(ctx)

	if i.logRequests {
		logger.Debug("Handling request", slog.String("command", commandName(req)), slog.Any("request", req))
	}

	res, err := invoke(ctx, req, next)
	if err != nil {
		return capture[Req, Res, PRes](ctx, i, logger, req, err)
	}

	if i.logRequests {
		logger.Debug("Request completed", slog.String("command", commandName(req)), slog.Bool("is_success", res.IsSuccess()))
	}
	return res
}

// invoke calls the handler, converting a panic into an error so both failure
// shapes flow through the same capture path.
func invoke[Req any, Res any, PRes interface {
	Response
	*Res
}](ctx context.Context, req Req, next Handler[Req, PRes]) (res PRes, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in command handler: %v", r)
		}
	}()
	return next(ctx, req)
}

func capture[Req any, Res any, PRes interface {
	Response
	*Res
}](ctx context.Context, i *FailureInterceptor, logger *slog.Logger, req Req, err error) PRes {
	traceID := uuid.NewString()
	name := commandName(req)

	logger.Error("UnhandledException",
		slog.String("command", name),
		slog.String("error", err.Error()),
		slog.String("trace_id", traceID),
	)

	snapshot := fmt.Sprintf("%+v", req)
	if len(snapshot) > maxRequestSnapshotLen {
		snapshot = snapshot[:maxRequestSnapshotLen]
	}

	failure := domain.CommandFailure{
		ID:             uuid.NewString(),
		CommandName:    name,
		ErrorDetails:   err.Error(),
		Timestamp:      time.Now().UTC(),
		RequestContent: &snapshot,
		TraceID:        traceID,
	}

	// The failure record must survive both the rolled-back business
	// transaction and a cancelled request context. A failure while saving a
	// failure is logged and swallowed, never escalated.
	if saveErr := i.failures.Save(context.WithoutCancel(ctx), failure); saveErr != nil {
		logger.Error("Failed to persist command failure record",
			slog.String("trace_id", traceID),
			slog.String("error", saveErr.Error()),
		)
	} else {
		logger.Info("CommandFailure saved", slog.String("id", failure.ID), slog.String("trace_id", traceID))
	}

	res := PRes(new(Res))
	res.MarkInternalFailure(traceID)
	return res
}

// commandName is the operation's type name, used to label failure records.
func commandName(req any) string {
	t := reflect.TypeOf(req)
	if t == nil {
		return "UnknownCommand"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
