package warehouse

import "github.com/kaptinlin/go-i18n"

// ValidationError represents a single validate() failure at one path. It
// carries a Code/Message pair so callers can localize rather than pattern
// match on Error() text (spec §3.1, §7 kind 2).
type ValidationError struct {
	Path    string         `json:"path"`
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// NewValidationError builds a ValidationError with optional message params.
func NewValidationError(keyword, code, message string, params ...map[string]any) *ValidationError {
	e := &ValidationError{Keyword: keyword, Code: code, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *ValidationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize renders the error through a go-i18n localizer keyed on Code,
// falling back to the default English Message when localizer is nil.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// ValidationErrors aggregates one ValidationError per failing path, collected
// by _applySetters while walking the setter stack so that all violations —
// not just the first — are surfaced to the caller (spec §7 policy: the
// engine never swallows errors).
type ValidationErrors struct {
	ByPath map[string]*ValidationError
}

func (e *ValidationErrors) add(path string, err *ValidationError) {
	if e.ByPath == nil {
		e.ByPath = make(map[string]*ValidationError)
	}
	err.Path = path
	e.ByPath[path] = err
}

func (e *ValidationErrors) isEmpty() bool {
	return len(e.ByPath) == 0
}

func (e *ValidationErrors) Error() string {
	if len(e.ByPath) == 1 {
		for path, err := range e.ByPath {
			return path + ": " + err.Error()
		}
	}
	msg := ""
	for path, err := range e.ByPath {
		if msg != "" {
			msg += "; "
		}
		msg += path + ": " + err.Error()
	}
	return msg
}

// Localize renders every contained error through localizer, keyed by path.
func (e *ValidationErrors) Localize(localizer *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(e.ByPath))
	for path, err := range e.ByPath {
		out[path] = err.Localize(localizer)
	}
	return out
}
