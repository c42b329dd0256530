package types

import "errors"

// Config holds store parameters for Store.Attach.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// AcceptLanguage is the language preference forwarded to the remote
	// place search. Empty means the service default.
	AcceptLanguage string `json:"accept_language" yaml:"accept_language"`
}

// Config validation errors.
var ErrDataDirEmpty = errors.New("data dir must not be empty")

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
