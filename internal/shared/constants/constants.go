package constants

// Gin context keys set by the auth middleware and read by handlers.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyOrgID    = "org_id"
)

// Runtime environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
