// Command gosemigroups is a tiny demonstration CLI for the library: given a
// named presentation family and a degree, it runs the congruence facade and
// prints the class count and the number of normal forms.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gitrdm/gosemigroups/pkg/alphabet"
	"github.com/gitrdm/gosemigroups/pkg/presentations"
	"github.com/gitrdm/gosemigroups/pkg/semigroups"
)

func main() {
	family := flag.String("family", "monogenic", "presentation family: monogenic, symmetric-inverse, full-transformation")
	degree := flag.Int("degree", 4, "degree parameter (ignored by \"monogenic\")")
	flag.Parse()

	p, err := buildPresentation(*family, *degree)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gosemigroups:", err)
		os.Exit(1)
	}

	c := semigroups.NewCongruence(p, semigroups.NewCongruenceConfig())
	if err := c.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "gosemigroups:", err)
		os.Exit(1)
	}

	n, err := c.NumberOfClasses()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gosemigroups:", err)
		os.Exit(1)
	}
	fmt.Println("family:", *family)
	fmt.Println("number of classes:", n)

	forms, err := c.NormalForms()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gosemigroups:", err)
		os.Exit(1)
	}
	fmt.Println("normal forms:", len(forms))
}

func buildPresentation(family string, degree int) (*semigroups.Presentation, error) {
	switch family {
	case "monogenic":
		a, err := alphabet.New("01")
		if err != nil {
			return nil, err
		}
		p := semigroups.NewPresentation(a)
		u, _ := a.ParseWord("000")
		v, _ := a.ParseWord("0")
		if err := p.AddRule(u, v); err != nil {
			return nil, err
		}
		u, _ = a.ParseWord("0")
		v, _ = a.ParseWord("11")
		return p, p.AddRule(u, v)
	case "symmetric-inverse":
		return presentations.SymmetricInverseMonoid(degree)
	case "full-transformation":
		return presentations.FullTransformationMonoid(degree)
	default:
		return nil, fmt.Errorf("unknown family %q", family)
	}
}
