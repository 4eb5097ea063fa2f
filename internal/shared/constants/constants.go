package constants

const (
	// Context keys set by the auth middleware.
	ContextKeyCustomerID = "customer_id"

	// Environments recognized by the migration manager.
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Pagination bounds for the inventory listing.
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
