//go:build !linux

package shell

// TTYInjector is unavailable on this platform and always fails, so Choose
// falls back to printing.
type TTYInjector struct {
	Fd int
}

func (TTYInjector) Inject(string, bool) error {
	return ErrInjectUnsupported
}
