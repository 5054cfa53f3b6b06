package types

import (
	"errors"
	"fmt"
)

// NodeSpec names one node to create during a run.
type NodeSpec struct {
	ID   int32  `json:"id" yaml:"id" mapstructure:"id"`
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// Config holds the parameters of one run.
type Config struct {
	Items      int        `json:"items" yaml:"items" mapstructure:"items"`
	Output     string     `json:"output" yaml:"output" mapstructure:"output"`
	ArenaLimit int        `json:"arena_limit" yaml:"arena_limit" mapstructure:"arena_limit"`
	LogLevel   string     `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Nodes      []NodeSpec `json:"nodes" yaml:"nodes" mapstructure:"nodes"`
}

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// MaxItems bounds the generated array so i*i + i fits a 32-bit int.
const MaxItems = 1 << 15

// Config validation errors.
var (
	ErrItemsInvalid      = errors.New("items must be between 0 and 32768")
	ErrNodeIDOutOfRange  = errors.New("node id out of range")
	ErrOutputUnknown     = errors.New("unknown output format")
	ErrArenaLimitInvalid = errors.New("arena limit must not be negative")
)

// knownOutputs lists the output formats that Validate accepts.
var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
}

// DefaultNodes are the nodes a run creates when none are configured.
func DefaultNodes() []NodeSpec {
	return []NodeSpec{
		{ID: 1, Name: "alpha"},
		{ID: 2, Name: "beta"},
		{ID: 3, Name: "gamma"},
	}
}

// DefaultConfig returns the configuration that reproduces the canonical run.
func DefaultConfig() Config {
	return Config{
		Items:    10,
		Output:   OutputText,
		LogLevel: "warn",
		Nodes:    DefaultNodes(),
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Items < 0 || c.Items > MaxItems {
		return fmt.Errorf("%w: %d", ErrItemsInvalid, c.Items)
	}
	if !knownOutputs[c.Output] {
		return fmt.Errorf("%w: %q", ErrOutputUnknown, c.Output)
	}
	if c.ArenaLimit < 0 {
		return ErrArenaLimitInvalid
	}
	for _, n := range c.Nodes {
		if n.ID > MaxNodeID || n.ID < -MaxNodeID {
			return fmt.Errorf("%w: %d (limit %d)", ErrNodeIDOutOfRange, n.ID, MaxNodeID)
		}
	}
	return nil
}
