// Package config loads health and observability settings from layered
// sources.
//
// Later sources override earlier ones:
//
//  1. Defaults (Default)
//  2. A JSON or YAML file (NewFileSource)
//  3. HEALTHOPS_ environment variables (NewEnvSource)
//  4. Command-line flags registered by BindFlags (NewFlagSource)
//
// Environment variables use a double underscore for nesting and commas for
// lists, e.g. HEALTHOPS_HEALTH__READINESS_CHECKS=database,cache.
package config
