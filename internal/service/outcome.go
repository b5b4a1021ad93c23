package service

import appErrors "github.com/noah-isme/matricula-cli/pkg/errors"

// Kind classifies an operation outcome.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Outcome is the uniform result of every orchestration operation. Failed
// validation is an ordinary outcome value, never a raised error; the Code
// carries the failure taxonomy for callers that branch on it.
type Outcome struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// OK reports whether the operation mutated state.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Success builds a success outcome.
func Success(message string) Outcome {
	return Outcome{Kind: KindSuccess, Message: message}
}

// Info builds a no-op outcome, used when there is nothing to do.
func Info(message string) Outcome {
	return Outcome{Kind: KindInfo, Message: message}
}

// Failure builds an error outcome from a typed domain error.
func Failure(err *appErrors.Error) Outcome {
	if err == nil {
		return Outcome{Kind: KindError, Message: "unknown error"}
	}
	return Outcome{Kind: KindError, Code: err.Code, Message: err.Message}
}
