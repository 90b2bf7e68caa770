// Package config defines the format-agnostic font build settings model.
//
// The model deliberately carries no process-level concerns (build
// directory, logging, whether to execute ninja); those belong to the app
// configuration. Everything that parameterizes a generated build rule lives
// here, so the rule catalog depends on this package alone.
package config
