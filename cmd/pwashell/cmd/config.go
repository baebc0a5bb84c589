package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brianly1003/pwashell/internal/config"
)

const configFileName = "pwashell.yaml"

var (
	configInitLocal bool
	configInitForce bool
)

// configCmd displays or manages configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display and manage configuration",
	Long: `Display and manage pwashell configuration.

Without subcommands, shows the current effective configuration.

Examples:
  pwashell config              # Show current config
  pwashell config init         # Create config file with defaults
  pwashell config path         # Show config file location
  pwashell config get <key>    # Get a config value
  pwashell config set <key> <value>  # Set a config value`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to serialize config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

// configInitCmd creates a config file with defaults.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with default settings",
	Long: `Create a config file with default settings and documentation.

By default, creates ~/.pwashell/pwashell.yaml.
Use --local to create ./pwashell.yaml in the current directory.

Examples:
  pwashell config init          # Create ~/.pwashell/pwashell.yaml
  pwashell config init --local  # Create ./pwashell.yaml
  pwashell config init --force  # Overwrite existing file`,
	RunE: runConfigInit,
}

// configPathCmd shows config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file location",
	Long: `Show where the config file is searched for and whether it exists.

Examples:
  pwashell config path`,
	RunE: runConfigPath,
}

// configGetCmd gets a config value.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by key.

Keys use dot notation to access nested values.

Examples:
  pwashell config get manifest.source
  pwashell config get window.width
  pwashell config get opener.allowed_schemes`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a config value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value by key.

Creates the config file if it doesn't exist.
Keys use dot notation to access nested values.

Examples:
  pwashell config set manifest.source https://app.example.com/manifest.json
  pwashell config set window.width 1440
  pwashell config set shell.console_bridge false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configInitLocal, "local", false, "create config in current directory instead of ~/.pwashell/")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	var configPath string

	if configInitLocal {
		configPath = configFileName
	} else {
		configDir, err := config.EnsureConfigDir()
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = filepath.Join(configDir, configFileName)
	}

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := writeDefaultConfig(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Edit this file to point pwashell at your app's manifest.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config dir: %w", err)
	}

	locations := []string{
		"./" + configFileName,
		filepath.Join(configDir, configFileName),
		"/etc/pwashell/" + configFileName,
	}

	fmt.Println("Config search paths (in order):")
	for i, loc := range locations {
		exists := "not found"
		if _, err := os.Stat(loc); err == nil {
			exists = "exists"
		}
		fmt.Printf("  %d. %s (%s)\n", i+1, loc, exists)
	}

	fmt.Printf("\nConfig directory: %s\n", configDir)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value, err := getConfigValue(cfg, args[0])
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	configPath := cfgFile
	if configPath == "" {
		configDir, err := config.EnsureConfigDir()
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = filepath.Join(configDir, configFileName)
	}

	var data map[string]interface{}
	if content, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("failed to parse existing config: %w", err)
		}
	}
	if data == nil {
		data = make(map[string]interface{})
	}

	if err := setNestedValue(data, key, value); err != nil {
		return err
	}

	content, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, configPath)
	return nil
}

// getConfigValue looks a dotted key up in the effective configuration using
// the same names the YAML file uses.
func getConfigValue(cfg *config.Config, key string) (interface{}, error) {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err := yaml.Unmarshal(content, &tree); err != nil {
		return nil, err
	}

	var current interface{} = tree
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unknown config key: %s", key)
		}
		if current, ok = m[part]; !ok {
			return nil, fmt.Errorf("unknown config key: %s", key)
		}
	}

	switch v := current.(type) {
	case map[string]interface{}:
		return nil, fmt.Errorf("invalid key: %s", key)
	case []interface{}:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}
		return strings.Join(items, ","), nil
	default:
		return v, nil
	}
}

func setNestedValue(data map[string]interface{}, key string, value string) error {
	parts := strings.Split(key, ".")

	// Navigate to the parent
	current := data
	for i := 0; i < len(parts)-1; i++ {
		if _, ok := current[parts[i]]; !ok {
			current[parts[i]] = make(map[string]interface{})
		}
		if nested, ok := current[parts[i]].(map[string]interface{}); ok {
			current = nested
		} else {
			return fmt.Errorf("cannot set nested value: %s is not a map", parts[i])
		}
	}

	finalKey := parts[len(parts)-1]
	current[finalKey] = parseValue(key, value)

	return nil
}

func parseValue(key string, value string) interface{} {
	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}

	// Integer values for known int fields
	intKeys := []string{"width", "height", "timeout_seconds", "retry_max", "debounce_ms"}
	for _, k := range intKeys {
		if strings.HasSuffix(key, k) {
			var i int
			if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
				return i
			}
		}
	}

	// Comma-separated list values
	if strings.HasSuffix(key, "allowed_schemes") {
		var schemes []string
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				schemes = append(schemes, s)
			}
		}
		return schemes
	}

	return value
}

func writeDefaultConfig(path string) error {
	content := `# pwashell Configuration
# Copy this file to ~/.pwashell/pwashell.yaml and modify as needed

# Web app manifest
manifest:
  # Manifest file path or http(s) URL.
  # Leave empty to use the manifest bundled with the binary.
  source: ""

# Native window settings
window:
  width: 1280
  height: 820

  # Enable the webview developer tools
  debug: false

# Page-side shell behavior
shell:
  # User agent reported to the page
  user_agent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_2) AppleWebKit/602.3.12 (KHTML, like Gecko) Version/10.0.2 Safari/602.3.12"

  # Forward console.log from the page to the shell log
  console_bridge: true

# Links outside the app scope open in the default browser
opener:
  # Only these URL schemes are handed to the browser
  allowed_schemes:
    - "http"
    - "https"
    - "mailto"
    - "tel"

# Remote manifest download
fetch:
  timeout_seconds: 15
  retry_max: 3

# Manifest file watcher (pwashell check --watch)
watcher:
  # Debounce rapid changes (milliseconds)
  debounce_ms: 100

# Logging settings
logging:
  # Log level: debug, info, warn, error
  level: "info"

  # Log format: console (human-readable) or json
  format: "console"
`

	return os.WriteFile(path, []byte(content), 0644)
}
