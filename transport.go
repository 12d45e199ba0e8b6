package elicit

import (
	"context"

	"github.com/promptwire/elicit/internal/logctx"
	"github.com/promptwire/elicit/wire"
)

// Transport is the request/response collaborator used to reach the remote
// party. Call sends one named operation with a parameter payload and
// returns the result payload, or a transport-level error.
//
// Implementations must be safe for concurrent use by independent
// elicitations. The core never issues a second Call for the same
// elicitation before the previous one has returned.
type Transport interface {
	Call(ctx context.Context, op string, params map[string]any) (map[string]any, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, op string, params map[string]any) (map[string]any, error)

// Call implements Transport.
func (f TransportFunc) Call(ctx context.Context, op string, params map[string]any) (map[string]any, error) {
	return f(ctx, op, params)
}

// roundTrip performs one Call and normalizes its failure modes: a
// collaborator error becomes a TransportError, a nil payload a FormatError.
func roundTrip(ctx context.Context, tr Transport, op string, params map[string]any) (map[string]any, error) {
	logctx.From(ctx).DebugContext(ctx, "issuing prompt", "op", op)
	res, err := tr.Call(ctx, op, params)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if res == nil {
		return nil, &FormatError{Expected: "result payload", Received: "empty response"}
	}
	return res, nil
}

// extract pulls the response value out of a result payload.
func extract(res map[string]any) (any, bool) {
	v, ok := res[wire.KeyValue]
	return v, ok
}
