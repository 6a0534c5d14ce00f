package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

func InitEnvironmentVariables(projectDir, goEnv string) error {
	// Production deploys inject env vars directly and carry no .env files
	if os.Getenv("ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	envFile := filepath.Join(projectDir, DEV_ENV_FILENAME)
	if goEnv == "production" {
		envFile = filepath.Join(projectDir, PROD_ENV_FILENAME)
	}

	if err := godotenv.Load(envFile); err != nil {
		// providers that need no credentials must still work on a clean checkout
		if errors.Is(err, os.ErrNotExist) {
			log.Warnf("no %s file found, continuing with the ambient environment", envFile)
			return nil
		}

		return fmt.Errorf("failed to load %s file: %v", envFile, err)
	}

	return nil
}

func GetEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("GetEnv: missing %s environment variable", key)
	}

	return value, nil
}
