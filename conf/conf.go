// Package conf reads server configuration from the environment, in
// combination with godotenv loading a local .env file in the entrypoints.
package conf

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
)

// Config aggregates everything the server entrypoint needs.
type Config struct {
	HTTPAddress string
	CorsOrigins []string

	// JWTKey signs bearer tokens; empty disables authentication.
	JWTKey []byte
	// APIKeyBcrypt is the bcrypt hash API keys are compared against at
	// the token endpoint. The plaintext key is never configured.
	APIKeyBcrypt []byte

	CaseDeadline time.Duration

	// RepoBackend selects evaluation storage: "mem", "s3" or "ddb".
	RepoBackend string
	AWSRegion   string
	S3Bucket    string
	DdbTable    string
}

func Load() Config {
	return Config{
		HTTPAddress:  getEnvOr("HTTP_ADDRESS", ":8080"),
		CorsOrigins:  splitList(getEnvOr("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		JWTKey:       []byte(os.Getenv("JWT_KEY")),
		APIKeyBcrypt: []byte(os.Getenv("API_KEY_BCRYPT")),
		CaseDeadline: getCaseDeadline(),
		RepoBackend:  getEnvOr("EVAL_REPO_BACKEND", "mem"),
		AWSRegion:    getEnvOr("AWS_REGION", "eu-central-1"),
		S3Bucket:     os.Getenv("EVAL_S3_BUCKET"),
		DdbTable:     os.Getenv("EVAL_DDB_TABLE"),
	}
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getCaseDeadline() time.Duration {
	v := os.Getenv("CASE_DEADLINE_MS")
	if v == "" {
		return evalsrvc.DefaultCaseDeadline
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		panic("CASE_DEADLINE_MS must be a positive integer")
	}
	return time.Duration(ms) * time.Millisecond
}
