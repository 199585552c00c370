package cases

import (
	"fmt"
	"slices"

	"github.com/mazzegi/log"
	"github.com/mazzegi/retain/rangex"
	"github.com/mazzegi/retain/slicesx"
	"github.com/r3labs/diff/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Result struct {
	Case      Case
	Range     rangex.Range
	Before    []int64
	After     []int64
	Discarded []int64
	Report    slicesx.Report
	Changelog diff.Changelog
}

// Run applies the case to a copy of its values.
func (c Case) Run() (Result, error) {
	r, p, err := c.compile()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrInvalidCase, c.Name, err)
	}
	res := Result{
		Case:   c,
		Range:  r,
		Before: slices.Clone(c.Values),
		After:  slices.Clone(c.Values),
	}
	slicesx.RetainRange(&res.After, r, p.Keep,
		slicesx.WithDiscard(func(v *int64) {
			res.Discarded = append(res.Discarded, *v)
		}),
		slicesx.WithReport[int64](&res.Report),
	)
	res.Changelog, err = diff.Diff(res.Before, res.After)
	if err != nil {
		return Result{}, fmt.Errorf("diff: %w", err)
	}
	return res, nil
}

func (res Result) Summary(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%s: retain %s keep %q: %d of %d values examined, %d removed, %d left",
		res.Case.Name, res.Range, res.Case.Keep,
		res.Report.Examined, res.Report.OriginalLen, res.Report.Discarded, res.Report.Len)
}

type Runner struct {
	Verbose bool
	Lang    language.Tag
}

func NewRunner(verbose bool) *Runner {
	return &Runner{
		Verbose: verbose,
		Lang:    language.English,
	}
}

// Run runs all cases of cf, or only the one named only if not empty.
func (rn *Runner) Run(cf *File, only string) ([]Result, error) {
	cs := cf.Cases
	if only != "" {
		c, ok := cf.Find(only)
		if !ok {
			return nil, fmt.Errorf("no such case %q", only)
		}
		cs = []Case{c}
	}
	var results []Result
	for _, c := range cs {
		res, err := c.Run()
		if err != nil {
			log.Errorf("case %q: %v", c.Name, err)
			return results, err
		}
		log.Infof("%s", res.Summary(rn.Lang))
		if rn.Verbose {
			for _, ch := range res.Changelog {
				log.Debugf("case %q: %s %v: %v -> %v", c.Name, ch.Type, ch.Path, ch.From, ch.To)
			}
		}
		results = append(results, res)
	}
	return results, nil
}
