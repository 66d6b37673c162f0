package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Source identifies which surface a request came in through.
type Source string

const (
	SourceHTTP Source = "http"
	SourceCLI  Source = "cli"
)

// Scope carries per-request caller information into use cases.
type Scope struct {
	RequestID string
	Source    Source
}
