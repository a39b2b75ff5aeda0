package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degokisss/CS5709/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	config := viper.New()
	config.Set("state.path", statePath)

	repo, err := NewRepository(config, nil)
	require.NoError(t, err)
	return repo, statePath
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	first := time.Date(2026, 4, 3, 15, 0, 0, 0, time.UTC)
	second := first.Add(90 * time.Second)

	require.NoError(t, repo.SaveSubmissions(context.Background(), domain.SubmissionLog{first, second}))
	require.NoError(t, repo.SaveTheme(context.Background(), domain.ThemeLight))

	history, err := repo.LoadSubmissions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionLog{first, second}, history)

	theme, err := repo.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestRepositoryMissingFileDegradesToEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	history, err := repo.LoadSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = repo.LoadTheme(context.Background())
	require.ErrorIs(t, err, domain.ErrThemeNotSet)
}

func TestRepositoryCorruptFileDegradesToEmpty(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, os.WriteFile(statePath, []byte("not [valid toml"), 0o600))

	history, err := repo.LoadSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = repo.LoadTheme(context.Background())
	require.ErrorIs(t, err, domain.ErrThemeNotSet)
}

func TestRepositoryNewerSchemaVersionDegradesToEmpty(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, os.WriteFile(statePath, []byte("version = 2\ntheme = \"light\"\n"), 0o600))

	_, err := repo.LoadTheme(context.Background())
	require.ErrorIs(t, err, domain.ErrThemeNotSet)
}

func TestRepositoryUnknownPersistedThemeIsDiscarded(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, os.WriteFile(statePath, []byte("version = 1\ntheme = \"solarized\"\n"), 0o600))

	_, err := repo.LoadTheme(context.Background())
	require.ErrorIs(t, err, domain.ErrThemeNotSet)
}

func TestRepositorySaveSubmissionsPreservesTheme(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.SaveTheme(context.Background(), domain.ThemeDark))
	require.NoError(t, repo.SaveSubmissions(context.Background(), domain.SubmissionLog{time.Now().Truncate(time.Millisecond).UTC()}))

	theme, err := repo.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestRepositorySaveThemePreservesSubmissions(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	stamp := time.Date(2026, 4, 3, 15, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveSubmissions(context.Background(), domain.SubmissionLog{stamp}))
	require.NoError(t, repo.SaveTheme(context.Background(), domain.ThemeLight))

	history, err := repo.LoadSubmissions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionLog{stamp}, history)
}

func TestRepositorySaveThemeRejectsUnknownTheme(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.Error(t, repo.SaveTheme(context.Background(), domain.Theme("sepia")))
}

func TestRepositorySubmissionsTruncateToMilliseconds(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	stamp := time.Date(2026, 4, 3, 15, 0, 0, 123456789, time.UTC)

	require.NoError(t, repo.SaveSubmissions(context.Background(), domain.SubmissionLog{stamp}))

	history, err := repo.LoadSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, stamp.UnixMilli(), history[0].UnixMilli())
	assert.True(t, history[0].Equal(stamp.Truncate(time.Millisecond)))
}

func TestRepositoryStateFileHasRestrictivePermissions(t *testing.T) {
	t.Parallel()

	repo, statePath := newTestRepository(t)
	require.NoError(t, repo.SaveTheme(context.Background(), domain.ThemeDark))

	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositorySaveCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "nested", "deeper", "state.toml")
	config := viper.New()
	config.Set("state.path", statePath)

	repo, err := NewRepository(config, nil)
	require.NoError(t, err)

	require.NoError(t, repo.SaveTheme(context.Background(), domain.ThemeLight))

	theme, err := repo.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.LoadSubmissions(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.SaveSubmissions(ctx, nil), context.Canceled)
	_, err = repo.LoadTheme(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.SaveTheme(ctx, domain.ThemeDark), context.Canceled)
}

func TestRepositoryConcurrentAccessIsSerialized(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	base := time.Date(2026, 4, 3, 15, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			stamp := base.Add(time.Duration(n) * time.Second)
			assert.NoError(t, repo.SaveSubmissions(context.Background(), domain.SubmissionLog{stamp}))
			_, err := repo.LoadSubmissions(context.Background())
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	history, err := repo.LoadSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)

	// The surviving entry must be one of the written stamps, not a torn mix.
	found := false
	for i := 0; i < 8; i++ {
		if history[0].Equal(base.Add(time.Duration(i) * time.Second)) {
			found = true
			break
		}
	}
	assert.True(t, found, "unexpected surviving stamp "+strconv.FormatInt(history[0].UnixMilli(), 10))
}
