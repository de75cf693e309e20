package main

import (
	"fmt"
	"os"

	"github.com/renz/portfolio/internal/config"
	"github.com/renz/portfolio/internal/contact"
	"github.com/renz/portfolio/internal/content"
	"github.com/renz/portfolio/internal/observability"
	"github.com/renz/portfolio/internal/server"
	"github.com/renz/portfolio/internal/server/ratelimit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Start an HTTP server that renders the portfolio page and handles theme,
section tracking, and contact form requests.

Configuration is read from the environment (and .env): EMAILJS_SERVICE_ID,
EMAILJS_TEMPLATE_ID, EMAILJS_PUBLIC_KEY, and FORM_TOKEN_SECRET are required.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}
	return srv.Start()
}

// newServer wires content, delivery, and rate limiting into a server.
func newServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	if verbose {
		observability.NewPrinter(os.Stderr).PrintPortfolio(portfolio)
	}

	delivery := contact.NewEmailJS(contact.EmailJSConfig{
		Endpoint:   cfg.EmailJS.Endpoint,
		ServiceID:  cfg.EmailJS.ServiceID,
		TemplateID: cfg.EmailJS.TemplateID,
		PublicKey:  cfg.EmailJS.PublicKey,
	})

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		Logger:        logger,
		Portfolio:     portfolio,
		Delivery:      delivery,
		FormToken:     cfg.FormToken,
		SecureCookies: cfg.SecureCookies,
		RateLimit:     ratelimit.LoadConfig(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("server configured",
		zap.Int("port", cfg.Port),
		zap.String("content", contentName(cfg.ContentPath)),
		zap.String("emailjs_endpoint", cfg.EmailJS.Endpoint),
	)
	return srv, nil
}

func contentName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
