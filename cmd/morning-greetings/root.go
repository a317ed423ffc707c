package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Giorgio68/morning-greetings/cmd/morning-greetings/contactscmd"
	"github.com/Giorgio68/morning-greetings/cmd/morning-greetings/sendcmd"
	"github.com/Giorgio68/morning-greetings/internal/pathutil"
)

const envPrefix = "MORNING_GREETINGS"

func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morning-greetings",
		Short: "Send templated morning greetings to a contact list",
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().String("config", "", "Config file path (optional).")
	_ = viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))

	cmd.PersistentFlags().String("log-level", "", "Logging level: debug|info|warn|error (defaults to info).")
	cmd.PersistentFlags().String("log-format", "text", "Logging format: text|json.")
	cmd.PersistentFlags().Bool("log-add-source", false, "Include source file:line in logs.")
	cmd.PersistentFlags().String("state-dir", "", "State directory (defaults to ~/.morning-greetings).")

	_ = viper.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.add_source", cmd.PersistentFlags().Lookup("log-add-source"))
	_ = viper.BindPFlag("state_dir", cmd.PersistentFlags().Lookup("state-dir"))

	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.add_source", false)
	viper.SetDefault("send.pause", "3s")
	viper.SetDefault("send.transport", "console")

	cmd.AddCommand(sendcmd.New())
	cmd.AddCommand(contactscmd.New())
	cmd.AddCommand(newJournalCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	cfgFile := strings.TrimSpace(viper.GetString("config"))
	if cfgFile == "" {
		return
	}
	cfgFile = pathutil.ExpandHomePath(cfgFile)

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		return
	}

	stateDir := strings.TrimSpace(viper.GetString("state_dir"))
	if stateDir != "" {
		viper.Set("state_dir", pathutil.ExpandHomePath(stateDir))
	}
}
