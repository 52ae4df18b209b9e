package handlers

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
