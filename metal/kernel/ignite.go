package kernel

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
	"github.com/Ferie/angular-dot-env-environments/pkg/portal"
	"github.com/joho/godotenv"
)

// IgniteLenient loads envPath when it exists and builds the host
// environment. Variables already exported by the process win over the file.
func IgniteLenient(envPath string, validate *portal.Validator) (*env.Environment, error) {
	if err := godotenv.Load(envPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load environment from %s: %w", envPath, err)
		}

		slog.Warn("environment file not found, using process environment", "path", envPath)
	}

	return MakeEnv(validate), nil
}
