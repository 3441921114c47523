package config

import (
	"reflect"
	"strings"

	"html-banner-generator/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all tool-level configuration for the banner generator.
// It is divided into partial configurations for better modularity.
// The campaign document itself is separate input, loaded by feature/campaign.
type Config struct {
	// Paths holds the filesystem locations the generator works with.
	Paths PathsConfig `mapstructure:"paths"`
	// Preview holds configuration for the local preview server.
	Preview PreviewConfig `mapstructure:"preview"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// PathsConfig holds the filesystem locations the generator works with.
type PathsConfig struct {
	// Output is the root directory banner artifacts are written to.
	Output string `mapstructure:"output" default:"dist"`
	// Templates is the directory containing one template root per template type.
	Templates string `mapstructure:"templates" default:"templates"`
	// Campaign is the default campaign configuration file.
	Campaign string `mapstructure:"campaign" default:"banners.json"`
}

// PreviewConfig holds configuration for the local preview server.
type PreviewConfig struct {
	// Port is the port where the preview server will listen.
	Port string `mapstructure:"port" default:"8080"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PATHS_OUTPUT -> paths.output)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
