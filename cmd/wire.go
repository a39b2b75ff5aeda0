package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/degokisss/CS5709/internal/adapters/mailer/emailjs"
	tomlrepo "github.com/degokisss/CS5709/internal/adapters/repo/toml"
	chainstore "github.com/degokisss/CS5709/internal/adapters/secrets/chain"
	themedetect "github.com/degokisss/CS5709/internal/adapters/theme"
	"github.com/degokisss/CS5709/internal/application"
	"github.com/degokisss/CS5709/internal/content"
	"github.com/degokisss/CS5709/internal/domain"
	"github.com/degokisss/CS5709/internal/ports"
)

type app struct {
	log      *zap.Logger
	secrets  ports.SecretStore
	themes   *application.ThemeService
	contact  *application.ContactService
	site     domain.Portfolio
	sections []domain.Section
	navCfg   application.NavigationConfig
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	log, err := newLogger(homeDir)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	v := viper.New()
	v.SetDefault("nav.scroll_threshold", application.DefaultScrollThreshold)
	v.SetDefault("nav.offset_threshold", application.DefaultOffsetThreshold)
	v.SetDefault("nav.bottom_tolerance", application.DefaultBottomTolerance)
	v.SetDefault("nav.suppression_window", application.DefaultSuppressionWindow)
	v.SetDefault("contact.max_submissions", application.DefaultMaxSubmissions)
	v.SetDefault("contact.window", application.DefaultTimeWindow)

	state, err := tomlrepo.NewRepository(v, log.Named("state"))
	if err != nil {
		return nil, fmt.Errorf("wire state repository: %w", err)
	}

	secrets, err := chainstore.NewEnvFirstWithFileFallback(filepath.Join(homeDir, ".folio", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	site := content.Default()

	mailer := emailjs.Mailer{
		Config: emailjs.Config{
			BaseURL:    envOrDefault("FOLIO_EMAILJS_BASE_URL", emailjs.DefaultBaseURL),
			ServiceID:  envOrDefault("FOLIO_EMAILJS_SERVICE_ID", "service_x7k2pqd"),
			TemplateID: envOrDefault("FOLIO_EMAILJS_TEMPLATE_ID", "template_c4m9yh2"),
			PublicKey:  envOrDefault("FOLIO_EMAILJS_PUBLIC_KEY", "rYkP3uVqH8wN1dLo9"),
			ToName:     site.Contact.ToName,
		},
		Secrets: secrets,
		Log:     log.Named("mail"),
	}

	themes, err := application.NewThemeService(state, themedetect.NewTerminalDetector(), domain.ThemeDark, log.Named("theme"))
	if err != nil {
		return nil, fmt.Errorf("wire theme service: %w", err)
	}

	contactSvc, err := application.NewContactService(application.ContactConfig{
		MaxSubmissions: v.GetInt("contact.max_submissions"),
		TimeWindow:     v.GetDuration("contact.window"),
	}, state, mailer, ports.SystemClock{}, log.Named("contact"))
	if err != nil {
		return nil, fmt.Errorf("wire contact service: %w", err)
	}

	return &app{
		log:      log,
		secrets:  secrets,
		themes:   themes,
		contact:  contactSvc,
		site:     site,
		sections: content.Sections(),
		navCfg: application.NavigationConfig{
			Sections:          domain.SectionIDs(content.Sections()),
			ScrollThreshold:   v.GetInt("nav.scroll_threshold"),
			OffsetThreshold:   v.GetInt("nav.offset_threshold"),
			BottomTolerance:   v.GetInt("nav.bottom_tolerance"),
			SuppressionWindow: v.GetDuration("nav.suppression_window"),
		},
	}, nil
}

// newLogger writes structured logs to a file under the config directory.
// Logging to stderr would bleed into the alternate screen while the
// interactive view is up.
func newLogger(homeDir string) (*zap.Logger, error) {
	logDir := filepath.Join(homeDir, ".folio", "logs")
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logDir, "folio.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
