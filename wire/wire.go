// Package wire defines the request/response vocabulary exchanged with the
// transport collaborator. Every prompt the elicitation core issues is one
// named operation plus a free-form parameter payload; every response is a
// payload from which a single value is extracted.
//
// The core treats the remote party as untrusted input: a payload that lacks
// the value key, or carries a value of the wrong shape, is a format error
// at the call site, never a silent default.
package wire

// Operation identifiers issued by the elicitation core.
const (
	// OpBool asks a yes/no question.
	OpBool = "prompt/bool"
	// OpText asks for free-form text.
	OpText = "prompt/text"
	// OpNumber asks for a number of a stated kind.
	OpNumber = "prompt/number"
	// OpSelect asks the remote party to choose one of an enumerated set
	// of variant names.
	OpSelect = "prompt/select"
)

// Parameter and result payload keys.
const (
	KeyQuestion = "question"
	KeyPrompt   = "prompt"
	KeyKind     = "kind"
	KeyOptions  = "options"
	KeyValue    = "value"
)

// Numeric kinds carried in OpNumber parameters.
const (
	KindInteger = "integer"
	KindFloat   = "float"
)

// BoolParams builds the parameter payload for OpBool.
func BoolParams(question string) map[string]any {
	return map[string]any{KeyQuestion: question}
}

// TextParams builds the parameter payload for OpText.
func TextParams(prompt string) map[string]any {
	return map[string]any{KeyPrompt: prompt}
}

// NumberParams builds the parameter payload for OpNumber. kind is one of
// KindInteger or KindFloat.
func NumberParams(prompt, kind string) map[string]any {
	return map[string]any{KeyPrompt: prompt, KeyKind: kind}
}

// SelectParams builds the parameter payload for OpSelect. The option order
// is preserved; it is part of the prompt.
func SelectParams(prompt string, options []string) map[string]any {
	return map[string]any{KeyPrompt: prompt, KeyOptions: append([]string(nil), options...)}
}

// Result wraps a single extracted value in a response payload.
func Result(v any) map[string]any {
	return map[string]any{KeyValue: v}
}
