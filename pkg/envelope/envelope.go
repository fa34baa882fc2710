// Package envelope implements the mall backend's JSON response wrapper
// convention: {code, msg/message, data}. Most endpoints use it, some do
// not, and the fields that are present cannot be trusted to have the
// documented types. Helpers here never panic on malformed input.
package envelope

import (
	"encoding/json"
)

// Success business codes. The backend answers 200 on some routes and 0 on
// others; both mean the same thing.
const (
	CodeOK     = 200
	CodeOKZero = 0
)

// DefaultErrorMessage is used when a failed envelope carries no usable
// message in either msg or message.
const DefaultErrorMessage = "Error"

// Decode parses a response body into a generic value: map[string]any for
// objects, []any for arrays, or a scalar. Bodies that are not valid JSON
// are passed through as the raw string, since a few endpoints answer with
// bare text.
func Decode(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

// IsEnveloped reports whether v is an object carrying a business code.
// Objects without a "code" key are deviant endpoints returning the payload
// directly and are passed through untouched.
func IsEnveloped(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj["code"]
	return ok
}

// Code extracts the numeric business code from an enveloped object.
// The second return is false when the code is absent or not a number;
// callers must treat that as a business failure.
func Code(v any) (int, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return 0, false
	}
	switch c := obj["code"].(type) {
	case float64:
		return int(c), true
	case json.Number:
		n, err := c.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// IsSuccess reports whether a business code signals success.
func IsSuccess(code int) bool {
	return code == CodeOK || code == CodeOKZero
}

// Message extracts the human-readable failure message: msg first, then
// message, then DefaultErrorMessage. Empty strings count as absent.
func Message(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return DefaultErrorMessage
	}
	if s, ok := obj["msg"].(string); ok && s != "" {
		return s
	}
	if s, ok := obj["message"].(string); ok && s != "" {
		return s
	}
	return DefaultErrorMessage
}

// Data returns the business payload carried by v. For enveloped objects
// that is the "data" field (nil when absent). Deviant objects without a
// code and bare arrays are their own payload: some endpoints skip the
// envelope entirely. Anything else has no extractable payload.
func Data(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if _, enveloped := t["code"]; enveloped {
			return t["data"]
		}
		return t
	case []any:
		return t
	default:
		return nil
	}
}
