package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/nodelist/pkg/types"
)

const (
	configFileType = "yaml"

	cfgKeyItems      = "items"
	cfgKeyOutput     = "output"
	cfgKeyArenaLimit = "arena_limit"
	cfgKeyLogLevel   = "log_level"
	cfgKeyNodes      = "nodes"
)

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	cfgKeyItems:      "items",
	cfgKeyOutput:     "output",
	cfgKeyArenaLimit: "arena-limit",
	cfgKeyLogLevel:   "log-level",
}

// loadConfig builds the effective configuration from defaults, an optional
// YAML file, and flags, in increasing precedence. Without a config file no
// file is read. Environment variables are not consulted.
func loadConfig(path string, fs *pflag.FlagSet) (types.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configFileType)
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return types.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return types.Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	def := types.DefaultConfig()
	v.SetDefault(cfgKeyItems, def.Items)
	v.SetDefault(cfgKeyOutput, def.Output)
	v.SetDefault(cfgKeyArenaLimit, def.ArenaLimit)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)

	nodes := make([]map[string]any, 0, len(def.Nodes))
	for _, n := range def.Nodes {
		nodes = append(nodes, map[string]any{"id": n.ID, "name": n.Name})
	}
	v.SetDefault(cfgKeyNodes, nodes)
}
