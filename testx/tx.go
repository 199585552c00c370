package testx

import (
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	AssertEqual(tx.t, want, have)
}

func (tx *Tx) AssertTrue(b bool, msgAndArgs ...any) {
	tx.t.Helper()
	if b {
		return
	}
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			tx.t.Fatalf(format, msgAndArgs[1:]...)
		}
	}
	tx.t.Fatalf("expect true; got false")
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	AssertNoErr(tx.t, err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

func (tx *Tx) AssertErrIs(err error, target error) {
	tx.t.Helper()
	AssertErrIs(tx.t, err, target)
}

func (tx *Tx) AssertPanics(fn func()) any {
	tx.t.Helper()
	return AssertPanics(tx.t, fn)
}
