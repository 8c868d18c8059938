package cli

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/puml2drawio/pkg/errors"
	"github.com/matzehuels/puml2drawio/pkg/pipeline"
)

// convertOpts holds the command-line flags for the root command.
type convertOpts struct {
	output     string        // output file; stdout when empty
	configPath string        // explicit config file
	java       string        // java executable
	jar        string        // PlantUML jar
	timeout    time.Duration // render deadline
	strict     bool          // fail on non-zero renderer exit status
}

// fileConfig is the on-disk shape of the config file. The timeout is a
// duration string such as "10s"; a bare number has no unit and is rejected.
type fileConfig struct {
	Java    string `toml:"java"`
	Jar     string `toml:"jar"`
	Timeout string `toml:"timeout"`
	Strict  bool   `toml:"strict"`
}

// loadConfig decodes the TOML file at path into opts.
//
// A missing file is an error only when the path was given explicitly.
// Keys that do not map to an option are rejected so typos do not pass
// silently.
func loadConfig(path string, explicit bool, opts *pipeline.Options) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	var timeout time.Duration
	if fc.Timeout != "" {
		if timeout, err = time.ParseDuration(fc.Timeout); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "timeout in %s must be a duration such as \"10s\"", path)
		}
	}

	opts.Java = fc.Java
	opts.Jar = fc.Jar
	opts.Timeout = timeout
	opts.Strict = fc.Strict
	return nil
}

// pipelineOptions merges defaults, the config file and explicitly set flags,
// in that order of priority.
func (c *CLI) pipelineOptions(cmd *cobra.Command, o *convertOpts) (pipeline.Options, error) {
	var opts pipeline.Options

	path, explicit := o.configPath, o.configPath != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := loadConfig(path, explicit, &opts); err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("java") || opts.Java == "" {
		opts.Java = o.java
	}
	if flags.Changed("jar") || opts.Jar == "" {
		opts.Jar = o.jar
	}
	if flags.Changed("timeout") || opts.Timeout == 0 {
		opts.Timeout = o.timeout
	}
	if flags.Changed("strict") {
		opts.Strict = o.strict
	}

	opts.Logger = c.Logger
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}

	c.Logger.Debug("options", "java", opts.Java, "jar", opts.Jar, "timeout", opts.Timeout, "strict", opts.Strict)
	return opts, nil
}
