package models

// OptimizeRequest is the body of POST /optimize.
// Fields are left untyped so the allocator can report which rule a malformed
// value breaks instead of failing at JSON binding.
type OptimizeRequest struct {
	MaxSpace any `json:"max_space"`
	Data     any `json:"data"`
}

// Empty reports whether the body carried neither field (e.g. "{}").
func (r OptimizeRequest) Empty() bool {
	return r.MaxSpace == nil && r.Data == nil
}
