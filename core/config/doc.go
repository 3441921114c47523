// Package config provides tool-level configuration for the banner generator.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all tool settings, divided
// into subsections:
//   - Paths: output root, templates root, default campaign file
//   - Preview: local preview server settings
//   - Log: logging level and format
//
// The campaign document (sizes, languages, motives) is not part of this
// configuration; it is an input file loaded by feature/campaign.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Paths.Output)
package config
