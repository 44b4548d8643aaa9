// Package config loads and validates declarative agent definitions
// and exposes them through a thread-safe registry.
package config

import (
	"fmt"
)

// Maturity grades how much autonomy an agent definition has earned.
type Maturity string

// Maturity levels. New definitions start at D1.
const (
	MaturityD1 Maturity = "D1"
	MaturityD2 Maturity = "D2"
	MaturityD3 Maturity = "D3"
	MaturityD4 Maturity = "D4"
)

// DefaultMaturity is applied when a definition omits the field.
const DefaultMaturity = MaturityD1

var validMaturities = map[Maturity]bool{
	MaturityD1: true,
	MaturityD2: true,
	MaturityD3: true,
	MaturityD4: true,
}

// AgentType distinguishes worker behaviour families. Behaviour
// differences are data (prompt, tools, maturity), not code.
type AgentType string

// Known agent types. Unknown types are accepted; the supervisor only
// filters on them.
const (
	AgentTypeImplementation AgentType = "implementation"
	AgentTypeReview         AgentType = "review"
	AgentTypeFrontend       AgentType = "frontend"
	AgentTypeBackend        AgentType = "backend"
	AgentTypeDiscovery      AgentType = "discovery"
)

// Constraints bound one agent's LLM calls.
type Constraints struct {
	MaxTokens      *int     `yaml:"max_tokens,omitempty"`
	Temperature    *float64 `yaml:"temperature,omitempty"`
	TimeoutSeconds *int     `yaml:"timeout_seconds,omitempty"`
}

// AgentDefinition is one declarative agent document.
type AgentDefinition struct {
	Name         string         `yaml:"name"`
	Type         AgentType      `yaml:"type"`
	SystemPrompt string         `yaml:"system_prompt"`
	Maturity     Maturity       `yaml:"maturity,omitempty"`
	Description  string         `yaml:"description,omitempty"`
	Capabilities []string       `yaml:"capabilities,omitempty"`
	Tools        []string       `yaml:"tools,omitempty"`
	Constraints  *Constraints   `yaml:"constraints,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty"`
}

// validate checks the binding field rules and applies the maturity
// default in place.
func (d *AgentDefinition) validate() error {
	if d.Name == "" {
		return &ValidationError{Component: "agent", ID: d.Name, Field: "name",
			Err: ErrMissingRequiredField}
	}
	if d.Type == "" {
		return &ValidationError{Component: "agent", ID: d.Name, Field: "type",
			Err: ErrMissingRequiredField}
	}
	if d.SystemPrompt == "" {
		return &ValidationError{Component: "agent", ID: d.Name, Field: "system_prompt",
			Err: ErrMissingRequiredField}
	}
	if d.Maturity == "" {
		d.Maturity = DefaultMaturity
	}
	if !validMaturities[d.Maturity] {
		return &ValidationError{Component: "agent", ID: d.Name, Field: "maturity",
			Err: fmt.Errorf("%w: unknown maturity %q", ErrInvalidValue, d.Maturity)}
	}
	return nil
}
