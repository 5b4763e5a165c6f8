package storage

// Config holds the connection settings for the object storage backend.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl"`
	// Bucket is the name of the bucket pages are served from.
	Bucket string `mapstructure:"bucket"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region"`
	// TimeoutSeconds is the per-operation timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}
