package agentcfg

import (
	"fmt"
	"strings"
)

// FieldError reports a single field that violated its constraint.
type FieldError struct {
	Field      string
	Constraint string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Constraint)
}

// ValidationError aggregates every field that failed validation. It is
// distinct from PortConflictError: malformed input vs. a conflict between
// two individually valid fields.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// PortConflictError signals that the agent and hosting ports, both valid on
// their own, collide. Callers can offer a targeted fix (change one of the
// two ports) rather than a generic validation message.
type PortConflictError struct {
	AgentPort   int
	HostingPort int
}

func (e *PortConflictError) Error() string {
	return fmt.Sprintf("agent port (%d) and hosting port (%d) must be different", e.AgentPort, e.HostingPort)
}
