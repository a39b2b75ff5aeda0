package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	statePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".folio"
	stateConfigFile = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// Repository persists the submission log and theme preference as a single
// TOML file. Reads never fail on bad content: a missing, corrupt, or
// newer-versioned file degrades to empty state so the app always starts.
// Writes go through a temp file rename and report real I/O errors.
type Repository struct {
	statePath string
	log       *zap.Logger
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.StateRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, log *zap.Logger) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	if log == nil {
		log = zap.NewNop()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, stateConfigDir, stateConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, stateConfigDir))
	cfg.SetDefault(statePathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	statePath := cfg.GetString(statePathKey)
	if statePath == "" {
		return nil, errors.New("state path is empty")
	}
	statePath, err = normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &Repository{statePath: statePath, log: log, mu: lockForPath(statePath)}, nil
}

func (r *Repository) LoadSubmissions(ctx context.Context) (domain.SubmissionLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file := r.readSchema()
	if len(file.Submissions) == 0 {
		return nil, nil
	}

	history := make(domain.SubmissionLog, 0, len(file.Submissions))
	for _, stamp := range file.Submissions {
		history = append(history, time.UnixMilli(stamp).UTC())
	}

	return history, nil
}

func (r *Repository) SaveSubmissions(ctx context.Context, history domain.SubmissionLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := r.readSchema()
	file.Submissions = make([]int64, 0, len(history))
	for _, stamp := range history {
		file.Submissions = append(file.Submissions, stamp.UnixMilli())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) LoadTheme(ctx context.Context) (domain.Theme, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file := r.readSchema()
	if file.Theme == "" {
		return "", domain.ErrThemeNotSet
	}

	theme := domain.Theme(file.Theme)
	if !theme.Valid() {
		r.log.Warn("discarding unknown persisted theme", zap.String("theme", file.Theme))
		return "", domain.ErrThemeNotSet
	}

	return theme, nil
}

func (r *Repository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := r.readSchema()
	file.Theme = string(theme)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// readSchema loads the state file, degrading every failure to empty state.
// The file is owned by this app alone; bad content means a crashed write or
// manual editing, and either way starting fresh beats refusing to start.
func (r *Repository) readSchema() stateSchema {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.log.Warn("read state file", zap.String("path", r.statePath), zap.Error(err))
		}
		return stateSchema{}
	}

	var file stateSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		r.log.Warn("discarding corrupt state file", zap.String("path", r.statePath), zap.Error(err))
		return stateSchema{}
	}
	if file.Version > currentSchemaVersion {
		r.log.Warn("discarding state file with newer schema",
			zap.Int("version", file.Version),
			zap.Int("current", currentSchemaVersion))
		return stateSchema{}
	}
	file.applyDefaults()

	return file
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file stateSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.statePath, stateFileMode); err != nil {
		return fmt.Errorf("chmod state file: %w", err)
	}

	return nil
}
