package errorx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var ErrPanic = errors.New("panic")

func ExitWhen(err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)
	fmt.Fprintf(os.Stderr, "ERROR (EXIT): %v - (%s:%d)\n", err, file, line)
	os.Exit(1)
}

// Recover is meant to be deferred in functions with a named error result.
// A panic is turned into an error matching ErrPanic (and the panic value,
// if that is an error). An already set error is kept alongside.
//
//	func run() (err error) {
//		defer errorx.Recover(&err)
//		...
//	}
func Recover(errp *error) {
	rec := recover()
	if rec == nil {
		return
	}
	var perr error
	if err, ok := rec.(error); ok {
		perr = fmt.Errorf("%w: %w", ErrPanic, err)
	} else {
		perr = fmt.Errorf("%w: %v", ErrPanic, rec)
	}
	*errp = errors.Join(*errp, perr)
}
