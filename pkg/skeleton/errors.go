package skeleton

import "fmt"

// MissingPlaceholderError reports a placeholder the template body references
// but the supplied bindings do not cover. Callers can branch on it with
// errors.As to distinguish fixture gaps from template lookup failures.
type MissingPlaceholderError struct {
	Template    string
	Placeholder string
}

func (e *MissingPlaceholderError) Error() string {
	return fmt.Sprintf("skeleton: template %q references placeholder %q with no binding", e.Template, e.Placeholder)
}
