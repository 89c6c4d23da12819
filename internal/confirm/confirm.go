// Package confirm models the user approval step that guards destructive
// actions. Injecting a Confirmer keeps cart and session logic deterministic
// under test.
package confirm

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Func adapts a plain function to the Confirmer interface.
type Func func(prompt string) bool

// Confirm calls f.
func (f Func) Confirm(prompt string) bool {
	return f(prompt)
}

// Always returns a Confirmer with a fixed answer, for tests and
// non-interactive runs.
func Always(answer bool) Confirmer {
	return Func(func(string) bool { return answer })
}
