package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestExportRendersWholePage(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "export", "--theme", "dark", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deniz Gokay")
	assert.Contains(t, stdout, "PROJECTS")
	assert.Contains(t, stdout, "GALLERY")
	assert.Contains(t, stdout, "deniz@denizgokay.dev")
}

func TestExportUsesSavedThemeByDefault(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStateFixture(home, "version = 1\ntheme = \"light\"\n"))

	stdout, _, err := executeCLI(t, home, "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deniz Gokay")
}

func TestExportSurvivesCorruptStateFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeStateFixture(home, "не toml {{{"))

	stdout, _, err := executeCLI(t, home, "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deniz Gokay")
}

func TestExportRejectsUnknownTheme(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "export", "--theme", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme \"sepia\"")
}

func TestContactRequiresAllFlags(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "contact")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s)")
	assert.Contains(t, err.Error(), "\"name\"")
}

func TestContactSendsThroughConfiguredRelay(t *testing.T) {
	var got struct {
		ServiceID      string `json:"service_id"`
		TemplateID     string `json:"template_id"`
		UserID         string `json:"user_id"`
		AccessToken    string `json:"accessToken"`
		TemplateParams struct {
			FromName string `json:"from_name"`
			ReplyTo  string `json:"reply_to"`
			Message  string `json:"message"`
			ToName   string `json:"to_name"`
		} `json:"template_params"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	t.Setenv("FOLIO_EMAILJS_BASE_URL", server.URL)
	t.Setenv("FOLIO_EMAILJS_SERVICE_ID", "service_test123")
	t.Setenv("FOLIO_EMAILJS_TEMPLATE_ID", "template_test456")
	t.Setenv("FOLIO_EMAILJS_PUBLIC_KEY", "pub_test789")

	home := t.TempDir()
	stdout, _, err := executeCLI(t, home, "contact",
		"--name", "Nora Hale",
		"--email", "nora@example.org",
		"--message", "Saw your ferry tracker, want to compare notes.",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Message sent")

	assert.Equal(t, "service_test123", got.ServiceID)
	assert.Equal(t, "template_test456", got.TemplateID)
	assert.Equal(t, "pub_test789", got.UserID)
	assert.Empty(t, got.AccessToken)
	assert.Equal(t, "Nora Hale", got.TemplateParams.FromName)
	assert.Equal(t, "nora@example.org", got.TemplateParams.ReplyTo)
	assert.Equal(t, "Saw your ferry tracker, want to compare notes.", got.TemplateParams.Message)
	assert.Equal(t, "Deniz", got.TemplateParams.ToName)

	state, err := os.ReadFile(filepath.Join(home, ".folio", "state.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(state), "submissions")
}

func TestContactRateLimitsAfterThreeSends(t *testing.T) {
	sends := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		sends++
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	t.Setenv("FOLIO_EMAILJS_BASE_URL", server.URL)

	home := t.TempDir()
	for i := 0; i < 3; i++ {
		_, _, err := executeCLI(t, home, "contact",
			"--name", "Nora Hale",
			"--email", "nora@example.org",
			"--message", fmt.Sprintf("Message number %d.", i+1),
		)
		require.NoError(t, err)
	}

	_, _, err := executeCLI(t, home, "contact",
		"--name", "Nora Hale",
		"--email", "nora@example.org",
		"--message", "One more for the road.",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "try again in")
	assert.Equal(t, 3, sends, "the limited attempt must never reach the relay")
}

func TestContactShowsSendingSpinner(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	t.Setenv("FOLIO_EMAILJS_BASE_URL", server.URL)

	home := t.TempDir()
	_, stderr, err := executeCLI(t, home, "contact",
		"--name", "Nora Hale",
		"--email", "nora@example.org",
		"--message", "Patience test.",
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Sending message")
}

func TestContactReportsValidationErrors(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "contact",
		"--name", "Nora Hale",
		"--email", "not-an-address",
		"--message", "Hi.",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an email address")
}

func TestRelayKeyRoundTrip(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "relay-key", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No relay private key configured")

	stdout, _, err = executeCLIWithInput(t, home, "pk_live_q3vM8rT0\n", "relay-key", "set")
	require.NoError(t, err)
	assert.Contains(t, stdout, "stored")

	stdout, _, err = executeCLI(t, home, "relay-key", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Relay private key configured")

	stdout, _, err = executeCLI(t, home, "relay-key", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "removed")

	stdout, _, err = executeCLI(t, home, "relay-key", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No relay private key configured")
}

func TestRelayKeySetRejectsEmptyInput(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLIWithInput(t, home, "\n", "relay-key", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no private key provided")
}

func TestContactAttachesStoredPrivateKey(t *testing.T) {
	accessToken := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			AccessToken string `json:"accessToken"`
		}
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))
		accessToken = payload.AccessToken
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	t.Setenv("FOLIO_EMAILJS_BASE_URL", server.URL)

	home := t.TempDir()
	_, _, err := executeCLIWithInput(t, home, "pk_live_q3vM8rT0\n", "relay-key", "set")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "contact",
		"--name", "Nora Hale",
		"--email", "nora@example.org",
		"--message", "Checking the hardened relay.",
	)
	require.NoError(t, err)
	assert.Equal(t, "pk_live_q3vM8rT0", accessToken)
}

func TestEnvPrivateKeyWinsOverStoredOne(t *testing.T) {
	accessToken := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			AccessToken string `json:"accessToken"`
		}
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))
		accessToken = payload.AccessToken
		_, _ = fmt.Fprint(w, "OK")
	}))
	defer server.Close()

	t.Setenv("FOLIO_EMAILJS_BASE_URL", server.URL)
	t.Setenv("FOLIO_EMAILJS_PRIVATE_KEY", "pk_env_override")

	home := t.TempDir()
	_, _, err := executeCLIWithInput(t, home, "pk_file_ignored\n", "relay-key", "set")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "contact",
		"--name", "Nora Hale",
		"--email", "nora@example.org",
		"--message", "Which key wins?",
	)
	require.NoError(t, err)
	assert.Equal(t, "pk_env_override", accessToken)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeStateFixture(home string, body string) error {
	configDir := filepath.Join(home, ".folio")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "state.toml"), []byte(body), 0o600)
}
