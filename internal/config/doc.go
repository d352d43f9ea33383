// Package config provides configuration structures and utilities for
// passcheck. It defines the analysis engine settings, batch and report
// preferences, and the optional YAML configuration file support.
package config
