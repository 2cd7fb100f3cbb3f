// Package config reads the declarative inputs of a pipeline step.
//
// In CI the platform exposes each input as an INPUT_<NAME> environment
// variable; for local runs the same keys can come from a YAML file. Reading
// the process environment is confined to this package so the domain and
// argument-building code stays pure.
package config
