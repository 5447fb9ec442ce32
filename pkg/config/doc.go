// Package config provides configuration management for the listcomp CLI.
//
// Configuration is a single YAML document holding logging and list I/O
// defaults. It is validated against a JSON schema reflected from [Config]
// before being decoded.
package config
