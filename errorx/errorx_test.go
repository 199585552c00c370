package errorx

import (
	"errors"
	"testing"

	"github.com/mazzegi/retain/testx"
)

var (
	errA = errors.New("a")
	errB = errors.New("b")
)

func TestGroup(t *testing.T) {
	tx := testx.NewTx(t)
	g := NewGroup(nil)
	tx.AssertEqual(true, g.IsEmpty())
	tx.AssertNoErr(g.Error())

	g.Append(errA, nil, errB)
	tx.AssertEqual(2, g.Len())
	err := g.Error()
	tx.AssertEqual("a | b", err.Error())
	tx.AssertErrIs(err, errA)
	tx.AssertErrIs(err, errB)

	called := false
	g.Do(func() error {
		called = true
		return nil
	})
	tx.AssertEqual(false, called)
}

func TestRecover(t *testing.T) {
	tx := testx.NewTx(t)
	run := func(fn func() error) (err error) {
		defer Recover(&err)
		return fn()
	}

	tx.AssertNoErr(run(func() error { return nil }))
	tx.AssertEqual(errA, run(func() error { return errA }))

	err := run(func() error { panic(errB) })
	tx.AssertErrIs(err, ErrPanic)
	tx.AssertErrIs(err, errB)

	err = run(func() error { panic("boom") })
	tx.AssertErrIs(err, ErrPanic)
	tx.AssertEqual("panic: boom", err.Error())
}
