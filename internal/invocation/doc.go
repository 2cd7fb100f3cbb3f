// Package invocation assembles the argument list for an agent run from the
// declarative options. The order of tokens is part of the contract with the
// invoked command and must not be rearranged.
package invocation
