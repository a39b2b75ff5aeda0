package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/degokisss/CS5709/internal/adapters/mailer/emailjs"
	"github.com/degokisss/CS5709/internal/domain"
)

func newRelayKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay-key",
		Short: "Manage the contact relay's private key",
		Long:  "The contact relay works with the public key alone. Storing the account's private key hardens it: the relay then rejects senders who only scraped the public key.",
	}

	cmd.AddCommand(
		newRelayKeySetCmd(app),
		newRelayKeyStatusCmd(app),
		newRelayKeyClearCmd(app),
	)

	return cmd
}

func newRelayKeySetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Read the private key from stdin and store it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read private key: %w", err)
			}

			key := strings.TrimSpace(line)
			if key == "" {
				return errors.New("no private key provided on stdin")
			}

			if err := app.secrets.Put(cmd.Context(), emailjs.PrivateKeySecretRef, key); err != nil {
				return fmt.Errorf("store private key: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Relay private key stored.")
			return err
		},
	}
}

func newRelayKeyStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether a private key is configured",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := app.secrets.Get(cmd.Context(), emailjs.PrivateKeySecretRef)
			switch {
			case errors.Is(err, domain.ErrSecretNotFound):
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No relay private key configured; the relay accepts the public key alone.")
				return err
			case err != nil:
				return fmt.Errorf("look up private key: %w", err)
			default:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Relay private key configured.")
				return err
			}
		},
	}
}

func newRelayKeyClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored private key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secrets.Delete(cmd.Context(), emailjs.PrivateKeySecretRef); err != nil {
				return fmt.Errorf("remove private key: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Relay private key removed.")
			return err
		},
	}
}
