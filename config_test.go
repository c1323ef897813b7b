package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateEachField(t *testing.T) {
	base := DefaultConfig()

	cases := []struct {
		name    string
		mutate  func(*Config)
		field   string
	}{
		{"MaxPointsInProgram", func(c *Config) { c.MaxPointsInProgram = 0 }, "MaxPointsInProgram"},
		{"MaxPointsInRandomExpression", func(c *Config) { c.MaxPointsInRandomExpression = -1 }, "MaxPointsInRandomExpression"},
		{"MaxExecDepth", func(c *Config) { c.MaxExecDepth = 0 }, "MaxExecDepth"},
		{"MinRandomInt>MaxRandomInt", func(c *Config) { c.MinRandomInt, c.MaxRandomInt = 10, 0 }, "MinRandomInt"},
		{"StdRandomFloat", func(c *Config) { c.StdRandomFloat = -1 }, "StdRandomFloat"},
		{"NewERCNameProbability<0", func(c *Config) { c.NewERCNameProbability = -0.1 }, "NewERCNameProbability"},
		{"NewERCNameProbability>1", func(c *Config) { c.NewERCNameProbability = 1.1 }, "NewERCNameProbability"},
		{"QueueCapacity", func(c *Config) { c.QueueCapacity = 0 }, "QueueCapacity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			require.Equal(t, tc.field, cerr.Field)
		})
	}
}
