// Package sendcmd implements the send command: import contacts, generate a
// greeting per contact, and deliver in preferred-time order.
package sendcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Giorgio68/morning-greetings/contacts"
	"github.com/Giorgio68/morning-greetings/delivery"
	"github.com/Giorgio68/morning-greetings/greeting"
	"github.com/Giorgio68/morning-greetings/internal/configutil"
	"github.com/Giorgio68/morning-greetings/internal/importutil"
	"github.com/Giorgio68/morning-greetings/internal/logutil"
	"github.com/Giorgio68/morning-greetings/internal/pathutil"
	"github.com/Giorgio68/morning-greetings/schedule"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a morning greeting to every imported contact",
		RunE:  run,
	}

	importutil.RegisterFlags(cmd)
	cmd.Flags().Duration("pause", 0, "Fixed delay between sends (default 3s, 0 disables).")
	cmd.Flags().String("transport", "", "Delivery transport: console|smtp.")
	cmd.Flags().Bool("dry-run", false, "Print greetings to the console instead of transmitting.")
	cmd.Flags().Bool("html", false, "Render the greeting as HTML for SMTP delivery.")
	cmd.Flags().Bool("journal", true, "Record delivery attempts in the state-dir journal.")
	cmd.Flags().String("templates", "", "YAML file overriding the built-in greeting templates.")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return err
	}

	modes, inputs, err := importutil.FromCommand(cmd)
	if err != nil {
		return err
	}
	store, err := contacts.BuildStore(logger, modes, inputs)
	if err != nil {
		return err
	}
	if store.IsEmpty() {
		logger.Warn("no contacts to greet")
		return nil
	}

	gen, err := generatorFromFlags(cmd)
	if err != nil {
		return err
	}

	transport, err := transportFromFlags(cmd)
	if err != nil {
		return err
	}

	var journal *delivery.Journal
	if configutil.FlagOrViperBool(cmd, "journal", "send.journal") {
		journal = delivery.NewJournal(pathutil.ResolveStateFile(viper.GetString("state_dir"), "journal.jsonl"))
	}
	dispatcher := delivery.NewDispatcher(logger, transport, journal)

	items := schedule.Plan(logger, store, gen)
	result, err := schedule.Run(cmd.Context(), logger, items, dispatcher, schedule.RunOptions{
		Pause: configutil.FlagOrViperDuration(cmd, "pause", "send.pause"),
	})
	if err != nil {
		return err
	}

	logger.Info("batch finished", "sent", result.Sent, "failed", result.Failed)
	if result.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "sent %d greeting(s), %d failed\n", result.Sent, result.Failed)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "sent %d greeting(s)\n", result.Sent)
	}
	return nil
}

func generatorFromFlags(cmd *cobra.Command) (*greeting.Generator, error) {
	path := configutil.FlagOrViperString(cmd, "templates", "send.templates")
	if strings.TrimSpace(path) == "" {
		return greeting.New(), nil
	}
	templates, err := greeting.LoadTemplates(pathutil.ExpandHomePath(path))
	if err != nil {
		return nil, err
	}
	return greeting.NewWithIntN(nil, templates), nil
}

func transportFromFlags(cmd *cobra.Command) (delivery.Sender, error) {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	transport := strings.ToLower(strings.TrimSpace(configutil.FlagOrViperString(cmd, "transport", "send.transport")))
	if dryRun || transport == "" || transport == "console" {
		return &delivery.ConsoleSender{Out: cmd.OutOrStdout()}, nil
	}
	if transport != "smtp" {
		return nil, fmt.Errorf("unknown transport: %s", transport)
	}

	return delivery.NewSMTPSender(delivery.SMTPConfig{
		Address:  viper.GetString("smtp.address"),
		From:     viper.GetString("smtp.from"),
		Password: viper.GetString("smtp.password"),
		Subject:  viper.GetString("smtp.subject"),
		HTML:     configutil.FlagOrViperBool(cmd, "html", "send.html"),
	})
}
