package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Mystogan321/useradmin/internal/flagx"
	"github.com/Mystogan321/useradmin/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like
// "800ms" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	StorageDriver    string          `json:"storage_driver"`
	StorageDir       string          `json:"storage_dir"`
	SQLitePath       string          `json:"sqlite_path"`
	PostgresDSN      string          `json:"postgres_dsn"`
	S3User           string          `json:"s3_user"`
	S3Password       string          `json:"s3_password"`
	S3Bucket         string          `json:"s3_bucket"`
	S3Region         string          `json:"s3_region"`
	S3BaseEndpoint   string          `json:"s3_base_endpoint"`
	SecretKey        string          `json:"secret_key"`
	TokenValidity    *timex.Duration `json:"token_validity"`
	TransportLatency *timex.Duration `json:"transport_latency"`
	ItemsPerPage     *int            `json:"items_per_page"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags via flagx.JsonConfigFlags; when
// neither is given, nothing is loaded. Empty JSON fields leave the current
// value in place. Read or unmarshal errors panic, the caller may recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageDriver != "" {
		cfg.Storage.Driver = jc.StorageDriver
	}
	if jc.StorageDir != "" {
		cfg.Storage.Dir = jc.StorageDir
	}
	if jc.SQLitePath != "" {
		cfg.Storage.SQLitePath = jc.SQLitePath
	}
	if jc.PostgresDSN != "" {
		cfg.Storage.PostgresDSN = jc.PostgresDSN
	}
	if jc.S3User != "" {
		cfg.Storage.S3User = jc.S3User
	}
	if jc.S3Password != "" {
		cfg.Storage.S3Password = jc.S3Password
	}
	if jc.S3Bucket != "" {
		cfg.Storage.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.Storage.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.Storage.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenValidity != nil {
		cfg.TokenValidity = time.Duration(jc.TokenValidity.Duration)
	}
	if jc.TransportLatency != nil {
		cfg.TransportLatency = time.Duration(jc.TransportLatency.Duration)
	}
	if jc.ItemsPerPage != nil {
		cfg.ItemsPerPage = *jc.ItemsPerPage
	}
}
