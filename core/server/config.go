package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key disables authentication (single-operator local use).
	ApiKey string `mapstructure:"api_key" default:""`
	// UploadLimitMB caps the size of imported spreadsheets in megabytes.
	UploadLimitMB int `mapstructure:"upload_limit_mb" default:"16"`
}

// BodyLimit returns the request body cap in bytes.
func (c Config) BodyLimit() int {
	limit := c.UploadLimitMB
	if limit <= 0 {
		limit = 16
	}
	return limit * 1024 * 1024
}
