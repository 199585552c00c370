package predicate

import (
	"testing"

	"github.com/mazzegi/retain/testx"
)

func TestParse(t *testing.T) {
	in := []int64{-3, -2, -1, 0, 1, 2, 3}
	tests := map[string][]int64{
		"all":          {-3, -2, -1, 0, 1, 2, 3},
		"none":         nil,
		"even":         {-2, 0, 2},
		"odd":          {-3, -1, 1, 3},
		"eq 0":         {0},
		"ne 0":         {-3, -2, -1, 1, 2, 3},
		"lt 1":         {-3, -2, -1, 0},
		"le 1":         {-3, -2, -1, 0, 1},
		"gt -1":        {0, 1, 2, 3},
		"GE  2":        {2, 3},
		"not odd":      {-2, 0, 2},
		"not not gt 2": {3},
	}
	for expr, exp := range tests {
		t.Run(expr, func(t *testing.T) {
			tx := testx.NewTx(t)
			p, err := Parse[int64](expr)
			tx.AssertNoErr(err)
			var have []int64
			for _, v := range in {
				if p.Keep(v) {
					have = append(have, v)
				}
			}
			tx.AssertEqual(exp, have)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"not",
		"foo",
		"le",
		"le 1 2",
		"odd 1",
		"eq x",
	}
	tx := testx.NewTx(t)
	testx.RunTests(tx, tests, func(tx *testx.Tx, expr string) {
		_, err := Parse[int64](expr)
		tx.AssertErrIs(err, ErrInvalid)
	})
}

func TestParseOverflow(t *testing.T) {
	tx := testx.NewTx(t)
	_, err := Parse[int8]("lt 300")
	tx.AssertErrIs(err, ErrInvalid)
	p, err := Parse[int8]("lt 100")
	tx.AssertNoErr(err)
	tx.AssertEqual(true, p.Keep(99))
	tx.AssertEqual("lt 100", p.String())
}
