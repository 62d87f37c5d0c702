package mmfile

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrFault is returned by Guard when fn touched a mapped page that is no
// longer backed by the file, typically because the file shrank after Map.
var ErrFault = errors.New("mmfile: memory access fault")

// Guard runs fn with faults on this goroutine turned into panics and
// recovers them as ErrFault. Other panics propagate unchanged.
func Guard(fn func() error) (err error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		// Faults surface as runtime errors carrying an Addr method.
		if f, ok := r.(interface{ Addr() uintptr }); ok {
			err = fmt.Errorf("%w at 0x%x", ErrFault, f.Addr())
			return
		}
		panic(r)
	}()

	return fn()
}
