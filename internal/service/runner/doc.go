// Package runner orchestrates a single pipeline-step run: validate inputs,
// locate and install the agent package, invoke the agent, and publish its
// captured output. On invocation failure the agent's diagnostic log is
// surfaced before the original error is returned.
package runner
