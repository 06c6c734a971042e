package block

import (
	"fmt"

	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/internal/options"
	"github.com/ftirkit/opus/label"
)

// AssemblerConfig collects the assembler's tunables. It is built from
// defaults plus the With... options; the zero value is not used directly.
type AssemblerConfig struct {
	labels  *label.Dictionary
	reports bool
	fileLog bool
}

// newAssemblerConfig returns the defaults: the built-in label dictionary
// with report and file-log decoding enabled.
func newAssemblerConfig() *AssemblerConfig {
	return &AssemblerConfig{
		labels:  label.Default(),
		reports: true,
		fileLog: true,
	}
}

func (c *AssemblerConfig) setLabels(dict *label.Dictionary) error {
	if dict == nil {
		return fmt.Errorf("%w: nil label dictionary", errs.ErrInvalidOption)
	}
	c.labels = dict

	return nil
}

// AssemblerOption configures an Assembler. Options are applied in order;
// an option rejecting its value fails the construction with an error
// wrapping errs.ErrInvalidOption.
type AssemblerOption = options.Option[*AssemblerConfig]

// WithLabels sets the dictionary used to resolve parameter keys to
// human-readable labels. Defaults to label.Default().
func WithLabels(dict *label.Dictionary) AssemblerOption {
	return func(c *AssemblerConfig) error {
		return c.setLabels(dict)
	}
}

// WithReports toggles report block decoding. Enabled by default.
func WithReports(enabled bool) AssemblerOption {
	return options.Set(func(c *AssemblerConfig) {
		c.reports = enabled
	})
}

// WithFileLog toggles file-log decoding. Enabled by default.
func WithFileLog(enabled bool) AssemblerOption {
	return options.Set(func(c *AssemblerConfig) {
		c.fileLog = enabled
	})
}
