// Package cases reads retain cases from TOML files and runs them.
package cases

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/retain/errorx"
	"github.com/mazzegi/retain/predicate"
	"github.com/mazzegi/retain/rangex"
)

var ErrInvalidCase = errors.New("invalid case")

type Case struct {
	Name   string  `toml:"name"`
	Values []int64 `toml:"values"`
	Range  string  `toml:"range"`
	Keep   string  `toml:"keep"`
}

type File struct {
	Cases []Case `toml:"case"`
}

func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	cf, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return cf, nil
}

// Decode reads and validates a case file.
func Decode(r io.Reader) (*File, error) {
	var cf File
	md, err := toml.NewDecoder(r).Decode(&cf)
	if err != nil {
		return nil, fmt.Errorf("toml-decode: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidCase, undec)
	}
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Validate reports all problems of all cases at once.
func (cf *File) Validate() error {
	g := errorx.NewGroup()
	names := map[string]bool{}
	for i, c := range cf.Cases {
		if c.Name == "" {
			g.Append(fmt.Errorf("%w: case #%d: missing name", ErrInvalidCase, i))
		} else if names[c.Name] {
			g.Append(fmt.Errorf("%w: case #%d: duplicate name %q", ErrInvalidCase, i, c.Name))
		}
		names[c.Name] = true
		if _, _, err := c.compile(); err != nil {
			g.Append(fmt.Errorf("%w: case #%d (%s): %w", ErrInvalidCase, i, c.Name, err))
		}
	}
	return g.Error()
}

func (cf *File) Find(name string) (Case, bool) {
	for _, c := range cf.Cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}

func (c Case) compile() (rangex.Range, predicate.Predicate[int64], error) {
	g := errorx.NewGroup()
	r, err := rangex.Parse(c.Range)
	if err != nil {
		g.Append(err)
	} else {
		g.Append(r.Check(len(c.Values)))
	}
	p, err := predicate.Parse[int64](c.Keep)
	g.Append(err)
	return r, p, g.Error()
}
