package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the user a request is processed on behalf of.
// UserID is stable across messages (e.g. "telegram_<id>") and keys
// the session store.
type Scope struct {
	UserID   string
	Username string
}
