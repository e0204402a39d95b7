// Package environment names the deployment environments a service can run in
// and normalizes the short aliases commonly used in configuration
// ("dev", "stage", "prod").
package environment
