package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/degokisss/CS5709/internal/domain"
)

func newContactCmd(app *app) *cobra.Command {
	var (
		name    string
		email   string
		message string
	)

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send me a message without opening the interface",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runSendSpinner(cmd.Context(), cmd.ErrOrStderr(), func(ctx context.Context) error {
				return app.contact.Submit(ctx, domain.ContactMessage{
					SenderName: name,
					ReplyTo:    email,
					Body:       message,
				})
			})

			var limited *domain.RateLimitError
			if errors.As(err, &limited) {
				return fmt.Errorf("you have sent a few messages recently, try again in %s", limited.RetryAfter.Round(time.Second))
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Message sent. Thanks for reaching out!")
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "reply-to email address")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
