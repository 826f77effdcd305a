package observability

// Semantic conventions for span events and attributes emitted by the tool
// runtime and the HTTP helpers. Keeping the names in one place keeps log
// output greppable across packages.
const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"

	AttrToolName     = "tool.name"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolError    = "tool.error"
	AttrToolDuration = "tool.duration"

	AttrHTTPMethod           = "http.method"
	AttrHTTPURL              = "http.url"
	AttrHTTPStatusCode       = "http.status_code"
	AttrHTTPResponseBodySize = "http.response.body.size"
)
