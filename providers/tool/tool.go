package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lmercadov/finadvisor/core/parse"
	"github.com/lmercadov/finadvisor/internal/jsonschema"
	"github.com/lmercadov/finadvisor/providers/observability"
)

// Tool binds a name and description to a strongly-typed handler function and
// derives JSON schemas for its input (I) and output (O) via reflection.
// Use [NewTool] to construct one; store it as a [GenericTool] for dispatch.
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
}

// Info is the metadata advertised for a tool: its name, description, and
// input schema.
type Info struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"inputSchema"`
}

// GenericTool is the type-erased interface all tools satisfy, so they can be
// registered, listed, and invoked without knowing their concrete input and
// output types.
type GenericTool interface {
	// ToolInfo returns the metadata used to advertise this tool to a caller.
	ToolInfo() Info

	// Call invokes the tool with a JSON-encoded input string and returns a
	// JSON-encoded output string. Returns an error if parsing or execution
	// fails.
	Call(ctx context.Context, inputJSON string) (string, error)
}

type toolOptions struct {
	Description string
}

// WithDescription sets the human-readable description advertised for the
// tool. Callers use it to decide when and how to invoke the tool.
func WithDescription(description string) func(*toolOptions) {
	return func(o *toolOptions) {
		o.Description = description
	}
}

// NewTool constructs a [Tool] with the given name and handler function.
// JSON schemas for I and O are derived automatically via reflection.
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...func(*toolOptions)) *Tool[I, O] {
	opts := &toolOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: opts.Description,
		Parameters:  jsonschema.Generate[I](),
		Output:      jsonschema.Generate[O](),
		Function:    function,
	}
}

// ToolInfo returns the metadata advertised for this tool.
func (t *Tool[I, O]) ToolInfo() Info {
	return Info{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
	}
}

// Call deserializes inputJSON into the tool's input type, executes the
// handler, and returns the result serialized as JSON. Span events are
// emitted at the start and end of execution when a span is present in ctx.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, inputJSON),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()

	// Tool-calling agents produce sloppy JSON; parse leniently.
	parsedInput, err := parse.StringAs[I](inputJSON)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(observability.String(observability.AttrToolError, err.Error()))
		}
		return "", err
	}

	output, err := t.Function(ctx, parsedInput)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		return "", err
	}

	outputBytes, err := json.Marshal(output)
	if err != nil {
		if span != nil {
			span.RecordError(err)
		}
		return "", err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, string(outputBytes)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return string(outputBytes), nil
}
