package progress

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/vango-dev/progressus/internal/errors"
)

// Iteration is the snapshot handed to a Formatter on every value change.
type Iteration struct {
	Value      float64 // absolute value, start included
	Max        float64
	Percentage int
}

// Formatter renders an Iteration as the text of the value element.
type Formatter func(Iteration) (string, error)

// DefaultFormatter renders "<percentage>%".
func DefaultFormatter(it Iteration) (string, error) {
	return DefaultFormat(it)
}

// DefaultFormat is the default format applied to an arbitrary argument. It
// fails with ErrInvalidIteration unless iteration is an Iteration or a
// non-nil *Iteration.
func DefaultFormat(iteration any) (string, error) {
	var it Iteration
	switch v := iteration.(type) {
	case Iteration:
		it = v
	case *Iteration:
		if v == nil {
			return "", perrors.New("P007").WithInput(fmt.Sprintf("%T", iteration))
		}
		it = *v
	default:
		return "", perrors.New("P007").WithInput(fmt.Sprintf("%T", iteration))
	}
	return strconv.Itoa(it.Percentage) + "%", nil
}

// TemplateFormatter returns a Formatter that substitutes {value}, {max} and
// {percentage} in tmpl.
//
//	TemplateFormatter("{value}/{max} files ({percentage}%)")
func TemplateFormatter(tmpl string) Formatter {
	return func(it Iteration) (string, error) {
		r := strings.NewReplacer(
			"{value}", formatNumber(it.Value),
			"{max}", formatNumber(it.Max),
			"{percentage}", strconv.Itoa(it.Percentage),
		)
		return r.Replace(tmpl), nil
	}
}
