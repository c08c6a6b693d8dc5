// Package providers contains built-in provider client implementations.
package providers
