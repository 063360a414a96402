// Package config manages user-level settings stored at ~/.vsext/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the engine release feed URL and the editor binary used to list installed
// extensions.
package config
