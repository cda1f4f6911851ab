package pricing

import "errors"

// The pipeline's error taxonomy. HTTP mapping happens in the gateway
// handler; every message there is generic and the diagnostic detail stays
// in the operator log.
var (
	// ErrInvalidInput: the caller must correct the request.
	ErrInvalidInput = errors.New("missing required fields")

	// ErrUpstream: the completion API answered with a non-success status.
	ErrUpstream = errors.New("ai analysis failed")

	// ErrAnalysis: transport failure or unparseable model output.
	ErrAnalysis = errors.New("pricing analysis failed")

	// ErrInvalidResult: the output parsed but the price fields are missing
	// or zero.
	ErrInvalidResult = errors.New("invalid analysis result")
)
