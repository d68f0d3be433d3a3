// Released under an MIT license. See LICENSE.

package validate

import (
	"fmt"

	"github.com/cinnamonbacon/schemeInterpreter/internal/common/interface/cell"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/errstr"
	"github.com/cinnamonbacon/schemeInterpreter/internal/common/type/num"
)

// Fixed returns an error value if len(actual) is not exactly n.
func Fixed(label string, actual []cell.I, n int) *errstr.T {
	if len(actual) != n {
		s := Count(n, "argument", "s")
		return errstr.Errorf("%s: expected %s, passed %d", label, s, len(actual))
	}

	return nil
}

// Minimum returns an error value if len(actual) is less than n.
func Minimum(label string, actual []cell.I, n int) *errstr.T {
	if len(actual) < n {
		s := Count(n, "argument", "s")
		return errstr.Errorf("%s: expected at least %s, passed %d", label, s, len(actual))
	}

	return nil
}

// Numbers returns the elements of actual as nums, or an error value if any
// of them is not a num.
func Numbers(label string, actual []cell.I) ([]*num.T, *errstr.T) {
	ns := make([]*num.T, len(actual))

	for i, c := range actual {
		if !num.Is(c) {
			return nil, errstr.Errorf("%s: argument %d is a %s, not a number", label, i+1, c.Name())
		}

		ns[i] = num.To(c)
	}

	return ns, nil
}

// Count returns n followed by label, with the plural suffix p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
