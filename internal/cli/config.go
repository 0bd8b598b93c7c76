package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seedcash/seedcash/internal/config"
	scerr "github.com/seedcash/seedcash/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify SeedCash configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.seedcash/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  seedcash config init
  seedcash config init --force`,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration settings.

Example:
  seedcash config show
  seedcash config show -o json`,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.

Examples:
  seedcash config get derivation.address_format
  seedcash config get output.default_format
  seedcash config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.
The configuration file will be updated immediately.

Examples:
  seedcash config set derivation.address_format legacy
  seedcash config set derivation.address_count 10
  seedcash config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(Config().Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return scerr.WithSuggestion(
			scerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	defaultCfg := config.Defaults()
	defaultCfg.Home = Config().Home

	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - derivation.address_format: Address encoding (legacy/cashaddr)")
	outln(w, "  - derivation.address_count: Default number of receive addresses")
	outln(w, "  - output.default_format: Output format (text/json)")
	outln(w, "  - logging.level: Log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if Formatter().IsJSON() {
		return displayConfigJSON(w, Config())
	}
	return displayConfigText(w, Config())
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	path := args[0]

	value, err := getConfigValue(Config(), path)
	if err != nil {
		return err
	}

	outln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	value := args[1]

	// Validate the path exists before touching the file.
	if _, err := getConfigValue(Config(), path); err != nil {
		return err
	}

	configPath := config.Path(Config().Home)
	currentCfg, err := config.Load(configPath)
	if err != nil {
		currentCfg = config.Defaults()
		currentCfg.Home = Config().Home
	}

	if err := setConfigValue(currentCfg, path, value); err != nil {
		return err
	}

	if err := config.Save(currentCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	out(cmd.OutOrStdout(), "Set %s = %s\n", path, value)
	return nil
}

// getConfigValue retrieves a value from the config using dot notation.
func getConfigValue(c *config.Config, path string) (string, error) {
	parts := strings.Split(path, ".")

	if len(parts) == 1 {
		if parts[0] == "home" {
			return c.Home, nil
		}
		return "", scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"key": parts[0]},
		)
	}
	if len(parts) != 2 {
		return "", scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"path": path},
		)
	}

	switch parts[0] {
	case "derivation":
		return getDerivationValue(c, parts[1])
	case "security":
		if parts[1] == "memory_lock" {
			return strconv.FormatBool(c.Security.MemoryLock), nil
		}
	case "output":
		return getOutputValue(c, parts[1])
	case "logging":
		return getLoggingValue(c, parts[1])
	}
	return "", scerr.WithDetails(
		scerr.ErrUnknownConfigKey,
		map[string]string{"path": path},
	)
}

func getDerivationValue(c *config.Config, key string) (string, error) {
	switch key {
	case "address_format":
		return c.Derivation.AddressFormat, nil
	case "address_count":
		return strconv.Itoa(c.Derivation.AddressCount), nil
	default:
		return "", scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"section": "derivation", "key": key},
		)
	}
}

func getOutputValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_format":
		return c.Output.DefaultFormat, nil
	case "verbose":
		return strconv.FormatBool(c.Output.Verbose), nil
	case "color":
		return c.Output.Color, nil
	default:
		return "", scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"section": "output", "key": key},
		)
	}
}

func getLoggingValue(c *config.Config, key string) (string, error) {
	switch key {
	case "level":
		return c.Logging.Level, nil
	case "file":
		return c.Logging.File, nil
	default:
		return "", scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"section": "logging", "key": key},
		)
	}
}

// setConfigValue sets a value in the config using dot notation.
func setConfigValue(c *config.Config, path, value string) error {
	parts := strings.Split(path, ".")

	if len(parts) == 1 && parts[0] == "home" {
		c.Home = value
		return nil
	}
	if len(parts) != 2 {
		return scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"path": path},
		)
	}

	switch parts[0] {
	case "derivation":
		return setDerivationValue(c, parts[1], value)
	case "security":
		if parts[1] == "memory_lock" {
			c.Security.MemoryLock = value == "true"
			return nil
		}
	case "output":
		return setOutputValue(c, parts[1], value)
	case "logging":
		return setLoggingValue(c, parts[1], value)
	}
	return scerr.WithDetails(
		scerr.ErrUnknownConfigKey,
		map[string]string{"path": path},
	)
}

func setDerivationValue(c *config.Config, key, value string) error {
	switch key {
	case "address_format":
		if value != "legacy" && value != "cashaddr" {
			return scerr.WithDetails(
				scerr.ErrInvalidFormat,
				map[string]string{"value": value, "valid": "legacy or cashaddr"},
			)
		}
		c.Derivation.AddressFormat = value
		return nil
	case "address_count":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return scerr.WithDetails(
				scerr.ErrInvalidFormat,
				map[string]string{"value": value, "valid": "a positive integer"},
			)
		}
		c.Derivation.AddressCount = n
		return nil
	default:
		return scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"section": "derivation", "key": key},
		)
	}
}

func setOutputValue(c *config.Config, key, value string) error {
	switch key {
	case "default_format":
		if value != "text" && value != "json" && value != "auto" {
			return scerr.WithDetails(
				scerr.ErrInvalidFormat,
				map[string]string{"value": value, "valid": "text, json, or auto"},
			)
		}
		c.Output.DefaultFormat = value
		return nil
	case "verbose":
		c.Output.Verbose = value == "true"
		return nil
	case "color":
		if value != "auto" && value != "always" && value != "never" {
			return scerr.WithDetails(
				scerr.ErrInvalidFormat,
				map[string]string{"value": value, "valid": "auto, always, or never"},
			)
		}
		c.Output.Color = value
		return nil
	default:
		return scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"section": "output", "key": key},
		)
	}
}

func setLoggingValue(c *config.Config, key, value string) error {
	switch key {
	case "level":
		switch value {
		case "off", "error", "debug":
			c.Logging.Level = value
			return nil
		}
		return scerr.WithDetails(
			scerr.ErrInvalidFormat,
			map[string]string{"value": value, "valid": "off, error, or debug"},
		)
	case "file":
		c.Logging.File = value
		return nil
	default:
		return scerr.WithDetails(
			scerr.ErrUnknownConfigKey,
			map[string]string{"section": "logging", "key": key},
		)
	}
}

// displayConfigText shows the config in text format.
func displayConfigText(w io.Writer, c *config.Config) error {
	outln(w, "Configuration:")
	outln(w)
	out(w, "  Home: %s\n", c.Home)
	outln(w)
	outln(w, "  Derivation:")
	out(w, "    address_format: %s\n", c.Derivation.AddressFormat)
	out(w, "    address_count: %d\n", c.Derivation.AddressCount)
	outln(w)
	outln(w, "  Security:")
	out(w, "    memory_lock: %t\n", c.Security.MemoryLock)
	outln(w)
	outln(w, "  Output:")
	out(w, "    default_format: %s\n", c.Output.DefaultFormat)
	out(w, "    verbose: %t\n", c.Output.Verbose)
	out(w, "    color: %s\n", c.Output.Color)
	outln(w)
	outln(w, "  Logging:")
	out(w, "    level: %s\n", c.Logging.Level)
	out(w, "    file: %s\n", c.Logging.File)

	return nil
}

// displayConfigJSON shows the config in JSON format.
func displayConfigJSON(w io.Writer, c *config.Config) error {
	type configJSON struct {
		Version    int    `json:"version"`
		Home       string `json:"home"`
		Derivation struct {
			AddressFormat string `json:"address_format"`
			AddressCount  int    `json:"address_count"`
		} `json:"derivation"`
		Security struct {
			MemoryLock bool `json:"memory_lock"`
		} `json:"security"`
		Output struct {
			DefaultFormat string `json:"default_format"`
			Color         string `json:"color"`
			Verbose       bool   `json:"verbose"`
		} `json:"output"`
		Logging struct {
			Level string `json:"level"`
			File  string `json:"file"`
		} `json:"logging"`
	}

	outCfg := configJSON{
		Version: c.Version,
		Home:    c.Home,
	}
	outCfg.Derivation.AddressFormat = c.Derivation.AddressFormat
	outCfg.Derivation.AddressCount = c.Derivation.AddressCount
	outCfg.Security.MemoryLock = c.Security.MemoryLock
	outCfg.Output.DefaultFormat = c.Output.DefaultFormat
	outCfg.Output.Color = c.Output.Color
	outCfg.Output.Verbose = c.Output.Verbose
	outCfg.Logging.Level = c.Logging.Level
	outCfg.Logging.File = c.Logging.File

	return writeJSON(w, outCfg)
}
