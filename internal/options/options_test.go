package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type decodeConfig struct {
	limit   int
	name    string
	verbose bool
}

func (c *decodeConfig) setLimit(n int) error {
	if n < 0 {
		return errors.New("limit cannot be negative")
	}
	c.limit = n

	return nil
}

func withLimit(n int) Option[*decodeConfig] {
	return func(c *decodeConfig) error {
		return c.setLimit(n)
	}
}

func withName(name string) Option[*decodeConfig] {
	return Set(func(c *decodeConfig) {
		c.name = name
	})
}

func withVerbose(v bool) Option[*decodeConfig] {
	return Set(func(c *decodeConfig) {
		c.verbose = v
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &decodeConfig{}

		err := Apply(cfg,
			withLimit(10),
			withName("first"),
			withName("second"),
			withVerbose(true),
		)
		require.NoError(t, err)
		require.Equal(t, 10, cfg.limit)
		require.Equal(t, "second", cfg.name, "later options override earlier ones")
		require.True(t, cfg.verbose)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &decodeConfig{}

		err := Apply(cfg,
			withLimit(5),
			withLimit(-1),
			withName("unreached"),
		)
		require.Error(t, err)
		require.Contains(t, err.Error(), "limit cannot be negative")
		require.Equal(t, 5, cfg.limit)
		require.Empty(t, cfg.name, "options after the failure must not run")
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &decodeConfig{limit: 3}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.limit)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &decodeConfig{}

		err := Apply(cfg, nil, withLimit(7), nil)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.limit)
	})
}

func TestSet(t *testing.T) {
	cfg := &decodeConfig{}

	err := Set(func(c *decodeConfig) { c.verbose = true })(cfg)
	require.NoError(t, err)
	require.True(t, cfg.verbose)
}

func TestOption_OtherTargetTypes(t *testing.T) {
	var n int
	opt := Set(func(p *int) { *p = 42 })

	require.NoError(t, opt(&n))
	require.Equal(t, 42, n)
}
