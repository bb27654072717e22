package form

import (
	"sync"

	teacherValidator "edureg/validators/teacher"
)

// ExistsFunc answers whether an Aadhar number is already registered
type ExistsFunc func(aadhar string) (bool, error)

// AdvisoryChecker tracks the real-time availability feedback shown while the
// identity field is being typed. Checks are sequence-numbered: a result is
// applied only if it belongs to the most recently issued check, so a stale
// in-flight response can never overwrite a newer one.
type AdvisoryChecker struct {
	mu     sync.Mutex
	check  ExistsFunc
	seq    uint64
	exists bool
}

func NewAdvisoryChecker(check ExistsFunc) *AdvisoryChecker {
	return &AdvisoryChecker{check: check}
}

// Begin registers a new check for the given input and returns its token.
// A malformed identity suppresses the check entirely: the current answer
// resets to "does not exist" and ok is false.
func (a *AdvisoryChecker) Begin(aadhar string) (token uint64, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.seq++
	if !teacherValidator.IsValidAadhar(aadhar) {
		a.exists = false
		return 0, false
	}
	return a.seq, true
}

// Apply records a check result. Results for superseded tokens are discarded.
func (a *AdvisoryChecker) Apply(token uint64, exists bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if token != a.seq {
		return false
	}
	a.exists = exists
	return true
}

// Exists returns the latest advisory answer
func (a *AdvisoryChecker) Exists() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exists
}

// Run issues a check and applies its result synchronously. Errors leave the
// previous answer in place; advisory feedback never blocks the form.
func (a *AdvisoryChecker) Run(aadhar string) bool {
	token, ok := a.Begin(aadhar)
	if !ok {
		return false
	}

	exists, err := a.check(aadhar)
	if err == nil {
		a.Apply(token, exists)
	}
	return a.Exists()
}
