package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	PathLocation        string `mapstructure:"path_location"`
	PathTemplate        string `mapstructure:"path_template"`
	OnUnclosed          string `mapstructure:"on_unclosed"`
	OutputDir           string `mapstructure:"output_dir"`
	Glob                bool   `mapstructure:"glob"`
	IgnoreMissingPath   bool   `mapstructure:"ignore_missing_path"`
	IgnoreMissingSource bool   `mapstructure:"ignore_missing_source"`
	Tokens              bool   `mapstructure:"tokens"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("path_location", "below")
	viper.SetDefault("path_template", "{}")
	viper.SetDefault("on_unclosed", "omit-last-line")
	viper.SetDefault("output_dir", ".")
	viper.SetDefault("glob", true)
	viper.SetDefault("ignore_missing_path", false)
	viper.SetDefault("ignore_missing_source", false)
	viper.SetDefault("tokens", true) // annotate info strings with token estimates

	viper.SetConfigName("dir2md")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "dir2md"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("DIR2MD")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPathLocation returns where the path annotation is placed: above or below
func GetPathLocation() string {
	return viper.GetString("path_location")
}

// GetPathTemplate returns the one-slot pattern used for path lines
func GetPathTemplate() string {
	return viper.GetString("path_template")
}

// GetOnUnclosed returns the unclosed trailing block policy
func GetOnUnclosed() string {
	return viper.GetString("on_unclosed")
}

// GetOutputDir returns the unpack destination with tilde expansion
func GetOutputDir() string {
	return expandTilde(viper.GetString("output_dir"))
}

// GetGlob returns whether file arguments are expanded as glob patterns
func GetGlob() bool {
	return viper.GetBool("glob")
}

// GetIgnoreMissingPath returns whether path-less blocks are dropped instead
// of failing the parse
func GetIgnoreMissingPath() bool {
	return viper.GetBool("ignore_missing_path")
}

// GetIgnoreMissingSource returns whether unmatched source references are
// skipped instead of failing
func GetIgnoreMissingSource() bool {
	return viper.GetBool("ignore_missing_source")
}

// GetTokens returns whether token estimates are included in info strings
func GetTokens() bool {
	return viper.GetBool("tokens")
}

// SetPathLocation sets the path location at runtime
func SetPathLocation(loc string) {
	viper.Set("path_location", loc)
	C.PathLocation = loc
}

// SetPathTemplate sets the path template at runtime
func SetPathTemplate(tmpl string) {
	viper.Set("path_template", tmpl)
	C.PathTemplate = tmpl
}

// SetOnUnclosed sets the unclosed block policy at runtime
func SetOnUnclosed(policy string) {
	viper.Set("on_unclosed", policy)
	C.OnUnclosed = policy
}

// SetOutputDir sets the unpack destination at runtime
func SetOutputDir(dir string) {
	viper.Set("output_dir", dir)
	C.OutputDir = dir
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
