package llogs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Ferie/angular-dot-env-environments/metal/env"
)

type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

type StdoutLogs struct {
	logger *slog.Logger
}

// MakeLogs installs the default slog logger, writing to a dated file when a
// logs directory pattern is configured and to stdout otherwise.
func MakeLogs(env *env.Environment) (Driver, error) {
	if env.Logs.WritesToFile() {
		return MakeFilesLogs(env)
	}

	return MakeStdoutLogs(env, os.Stdout), nil
}

func MakeStdoutLogs(env *env.Environment, w io.Writer) StdoutLogs {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: env.Logs.SlogLevel()}))
	slog.SetDefault(logger)

	return StdoutLogs{logger: logger}
}

func (StdoutLogs) Close() bool {
	return true
}

func MakeFilesLogs(env *env.Environment) (Driver, error) {
	manager := FilesLogs{}
	manager.env = env

	manager.path = manager.DefaultPath()

	dir := filepath.Dir(manager.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return FilesLogs{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	resource, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)

	if err != nil {
		return FilesLogs{}, err
	}

	handler := slog.New(slog.NewTextHandler(resource, &slog.HandlerOptions{Level: env.Logs.SlogLevel()}))
	slog.SetDefault(handler)

	manager.file = resource
	manager.logger = handler

	return manager, nil
}

func (manager FilesLogs) DefaultPath() string {
	logsEnvironment := manager.env.Logs

	return fmt.Sprintf(
		logsEnvironment.Dir,
		time.Now().UTC().Format(logsEnvironment.DateFormat),
	)
}

func (manager FilesLogs) Close() bool {
	if manager.file == nil {
		return true
	}

	if err := manager.file.Close(); err != nil {
		manager.logger.Error("error closing file: " + err.Error())

		return false
	}

	return true
}
