package persist

// Config holds configuration for ledger persistence.
type Config struct {
	// Driver selects the backend: file, object or db.
	Driver string `mapstructure:"driver" default:"file"`
	// Dir is the data directory used by the file driver.
	Dir string `mapstructure:"dir" default:"./data"`
}

const (
	DriverFile   = "file"
	DriverObject = "object"
	DriverDB     = "db"
)
