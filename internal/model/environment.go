package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// IsProduction reports whether name designates production.
func IsProduction(name string) bool {
	return Environment(name) == EnvironmentProduction
}
