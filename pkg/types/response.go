// Package types holds the wire envelopes every storefront endpoint shares.
// The web client unwraps `data` on success and switches on `error.code`
// otherwise, so these shapes are part of the public API contract.
package types

// SuccessEnvelope wraps every 2xx payload under a single data key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error body: a stable machine-readable code, a
// message safe to display, and optional structured details (field errors,
// conflicting ids) for codes that allow them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError for non-2xx responses.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
