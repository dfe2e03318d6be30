// Package config provides configuration defaults and path helpers.
package config

import (
	"os"
	"time"
)

const (
	// AppName is the application name.
	AppName = "ccgen"

	// SourceURL is the page listing ISO-3166-1 country codes.
	SourceURL = "https://developer.paypal.com/docs/api/reference/country-codes/"

	// GeneratorReference is credited in the header of generated documents.
	GeneratorReference = "https://github.com/edg-l/payhelper"

	// DefaultTimeout for the source page request.
	DefaultTimeout = 30 * time.Second

	// DefaultMode is the default pairing mode.
	DefaultMode = "rows"

	// DefaultFormat is the default output format.
	DefaultFormat = "rust"

	// OutputFileMode is the permission of files written with --out.
	OutputFileMode os.FileMode = 0644
)

// Config holds runtime configuration.
type Config struct {
	URL       string
	Timeout   time.Duration
	Mode      string
	Format    string
	Reference string
	Out       string
	Check     bool
	Dump      bool
	Verbose   bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		URL:       SourceURL,
		Timeout:   DefaultTimeout,
		Mode:      DefaultMode,
		Format:    DefaultFormat,
		Reference: GeneratorReference,
	}
}

// UserAgent returns the User-Agent header value for the given version.
func UserAgent(version string) string {
	return AppName + "/" + version
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
