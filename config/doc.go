// Package config loads and validates the process configuration from the
// environment. Configuration is resolved once at startup via [Load] and
// passed explicitly into the gateway and tool constructors.
package config
