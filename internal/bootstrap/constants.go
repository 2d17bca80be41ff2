package bootstrap

// Log messages for application startup
const (
	LogMsgStartingService     = "Starting trust-skin-hub"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgPublisherStopFailed  = "Publisher worker shutdown failed"
)
