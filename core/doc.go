// Package core contains the credential-exchange domain contracts, entities,
// and orchestration logic. Provider-specific adapters must depend on this
// package; core must not depend on any concrete provider client.
package core
