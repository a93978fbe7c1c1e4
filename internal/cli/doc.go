// Package cli provides the command-line interface of the translator.
// It handles flag parsing, command creation and configuration loading
// using cobra and viper.
package cli
