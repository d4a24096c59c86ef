//go:build nosampling

package sampling

// No provider is registered under the nosampling tag; Current reports
// CapabilityUnavailableError to every caller.
