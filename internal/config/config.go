package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2/google"
)

// Config carries every externally supplied setting. It is populated once at
// process start and passed to components explicitly; library code never reads
// the environment on its own.
type Config struct {
	Port           string
	Env            string
	AllowedOrigins []string

	DatabaseURL        string
	ClickhouseURL      string
	ClickhouseDatabase string
	ClickhouseUsername string
	ClickhousePassword string

	ModelDir string
	DataDir  string

	RapidAPIKey  string
	RapidAPIHost string
	RegionCode   string
	CategoryFrom int
	CategoryTo   int

	GoogleCredentialsPath string
	GCPProject            string
	GCPLocation           string
	LLMModel              string

	TrainingImageURI    string
	TrainingCommand     []string
	TrainingArgs        []string
	TrainingOutputDir   string
	TrainingMachineType string
	TrainingPeriodDays  int
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// Missing .env is fine in production; everything can come from the
	// real environment.
	_ = godotenv.Load()

	categoryFrom, err := getEnvInt("INGEST_CATEGORY_FROM", 1)
	if err != nil {
		return nil, err
	}
	categoryTo, err := getEnvInt("INGEST_CATEGORY_TO", 2)
	if err != nil {
		return nil, err
	}
	periodDays, err := getEnvInt("TRAINING_PERIOD_DAYS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           getEnv("PORT", ":8080"),
		Env:            getEnv("ENV", "development"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),

		DatabaseURL:        os.Getenv("DB_URL"),
		ClickhouseURL:      os.Getenv("CLICKHOUSE_URL"),
		ClickhouseDatabase: os.Getenv("CLICKHOUSE_DATABASE"),
		ClickhouseUsername: os.Getenv("CLICKHOUSE_USERNAME"),
		ClickhousePassword: os.Getenv("CLICKHOUSE_PASSWORD"),

		ModelDir: getEnv("MODEL_DIR", "build/models"),
		DataDir:  getEnv("DATA_DIR", "data"),

		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost: getEnv("RAPIDAPI_HOST", "youtube342.p.rapidapi.com"),
		RegionCode:   getEnv("REGION_CODE", "US"),
		CategoryFrom: categoryFrom,
		CategoryTo:   categoryTo,

		GoogleCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GCPProject:            os.Getenv("GCP_PROJECT_NAME"),
		GCPLocation:           getEnv("GCP_LOCATION", "us-central1"),
		LLMModel:              getEnv("LLM_MODEL", "gemini-pro"),

		TrainingImageURI:    getEnv("TRAINING_IMAGE_URI", "gcr.io/cloud-aiplatform/training/catboost-cpu.0-24:latest"),
		TrainingCommand:     splitList(getEnv("TRAINING_COMMAND", "python3,train.py")),
		TrainingArgs:        splitList(os.Getenv("TRAINING_ARGS")),
		TrainingOutputDir:   os.Getenv("TRAINING_OUTPUT_DIR"),
		TrainingMachineType: getEnv("TRAINING_MACHINE_TYPE", "n1-standard-4"),
		TrainingPeriodDays:  periodDays,
	}

	return cfg, nil
}

// ValidateServer checks the settings the API server cannot start without.
func (c *Config) ValidateServer() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DB_URL")
	}
	if c.ClickhouseURL == "" {
		missing = append(missing, "CLICKHOUSE_URL")
	}
	if c.GoogleCredentialsPath == "" {
		missing = append(missing, "GOOGLE_APPLICATION_CREDENTIALS")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateIngest checks the settings the ingestion run cannot start without.
func (c *Config) ValidateIngest() error {
	if c.RapidAPIKey == "" {
		return fmt.Errorf("missing required configuration: RAPIDAPI_KEY")
	}
	if c.CategoryFrom < 1 || c.CategoryTo < c.CategoryFrom {
		return fmt.Errorf("invalid ingest category range [%d, %d]", c.CategoryFrom, c.CategoryTo)
	}
	return nil
}

// ValidateTraining checks the settings the scheduler cannot start without.
func (c *Config) ValidateTraining() error {
	var missing []string
	if c.GoogleCredentialsPath == "" {
		missing = append(missing, "GOOGLE_APPLICATION_CREDENTIALS")
	}
	if c.TrainingOutputDir == "" {
		missing = append(missing, "TRAINING_OUTPUT_DIR")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.TrainingPeriodDays < 1 {
		return fmt.Errorf("TRAINING_PERIOD_DAYS must be >= 1, got %d", c.TrainingPeriodDays)
	}
	return nil
}

// ResolveGoogleCredentials reads and validates the service-account file once
// at startup. When GCP_PROJECT_NAME is unset, the project id is taken from
// the credentials file.
func (c *Config) ResolveGoogleCredentials(ctx context.Context) error {
	data, err := os.ReadFile(c.GoogleCredentialsPath)
	if err != nil {
		return fmt.Errorf("failed to read service account file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return fmt.Errorf("invalid service account credentials: %w", err)
	}

	if c.GCPProject == "" {
		var sa struct {
			ProjectID string `json:"project_id"`
		}
		if err := json.Unmarshal(data, &sa); err != nil || sa.ProjectID == "" {
			if creds.ProjectID == "" {
				return fmt.Errorf("could not determine GCP project id from credentials")
			}
			c.GCPProject = creds.ProjectID
		} else {
			c.GCPProject = sa.ProjectID
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, v)
	}
	return n, nil
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
