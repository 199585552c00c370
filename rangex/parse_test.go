package rangex

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/retain/testx"
)

func TestParse(t *testing.T) {
	tests := map[string]Range{
		"1..4":      Span(1, 4),
		"1..=3":     SpanIncl(1, 3),
		"2..":       From(2),
		"..3":       To(3),
		"..=3":      ToIncl(3),
		"..":        Full(),
		" 0 .. 10 ": Span(0, 10),
	}
	for in, exp := range tests {
		t.Run(in, func(t *testing.T) {
			tx := testx.NewTx(t)
			r, err := Parse(in)
			tx.AssertNoErr(err)
			tx.AssertEqual(exp, r)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	tx := testx.NewTx(t)
	for _, s := range []string{"1..4", "1..=3", "2..", "..3", "..=3", ".."} {
		tx.AssertEqual(s, MustParse(s).String())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"1",
		"1-3",
		"a..3",
		"1..b",
		"1..=",
		"..=",
		"1...3",
		"1..2..3",
		"-1..3",
	}
	tx := testx.NewTx(t)
	testx.RunTests(tx, tests, func(tx *testx.Tx, in string) {
		_, err := Parse(in)
		tx.AssertErrIs(err, ErrSyntax)
	})
}

func TestRangeTOML(t *testing.T) {
	tx := testx.NewTx(t)
	var doc struct {
		Select Range `toml:"select"`
	}
	_, err := toml.Decode(`select = "1..=3"`, &doc)
	tx.AssertNoErr(err)
	tx.AssertEqual(SpanIncl(1, 3), doc.Select)

	_, err = toml.Decode(`select = "1-3"`, &doc)
	tx.AssertErr(err)
}
