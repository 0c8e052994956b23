package models

// Result is a JSON object returned by cloudphish, passed through without
// interpretation.
type Result map[string]any

// ResultStatus is the key under which cloudphish reports the analysis state
// of a submitted url.
const ResultStatus = "status"

// String returns the value stored under key if it is a string.
func (r Result) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}
