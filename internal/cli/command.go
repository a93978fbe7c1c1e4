package cli

import (
	"fmt"
	"io"

	"translator/internal/config"
	"translator/internal/domain"
	"translator/internal/handler"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CreateRootCommand creates the root command, which runs the interactive shell
func CreateRootCommand(flags *Flags, v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translator",
		Short: "Terminal translation dictionary",
		Long: `translator keeps entries of words that mean the same thing in
different languages. Entries are managed in an interactive shell and
exchanged with plain text files.

Examples:
  translator                                  # Launch the interactive shell
  translator search words cat                 # Print entries of words.txt holding "cat"
  translator translate words English cat French`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(flags, v)
			if err != nil {
				return err
			}
			defer app.Close()

			h := handler.NewHandler(cmd.InOrStdin(), cmd.OutOrStdout(), app.Dictionary, app.Stats, app.Logger)
			return h.Run()
		},
	}

	setupFlags(rootCmd, flags)
	if err := bindFlagsToViper(rootCmd, v); err != nil {
		panic(err)
	}

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "env file to load (default is ./.env)")
	cmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", flags.DataDir, "Directory holding entry files")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", flags.LogFile, "Log destination: stderr, stdout or a file path")
	cmd.PersistentFlags().IntVar(&flags.MaxEntries, "max-entries", flags.MaxEntries, "Maximum number of stored entries")
	cmd.PersistentFlags().IntVar(&flags.MaxTranslations, "max-translations", flags.MaxTranslations, "Maximum number of translations per entry")
}

// flagKeys maps persistent flags to configuration keys
var flagKeys = []struct {
	flag string
	key  string
}{
	{flag: "data-dir", key: config.KeyDataDir},
	{flag: "no-color", key: config.KeyNoColor},
	{flag: "log-level", key: config.KeyLogLevel},
	{flag: "log-file", key: config.KeyLogFile},
	{flag: "max-entries", key: config.KeyMaxEntries},
	{flag: "max-translations", key: config.KeyMaxTranslations},
}

func bindFlagsToViper(cmd *cobra.Command, v *viper.Viper) error {
	for _, b := range flagKeys {
		if err := v.BindPFlag(b.key, cmd.PersistentFlags().Lookup(b.flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", b.flag, err)
		}
	}
	return nil
}

// InitConfig loads the env file named by the --config flag, or ./.env when
// the flag is empty, into the process environment
func InitConfig(cfgFile string) error {
	if cfgFile == "" {
		return config.LoadEnvFiles()
	}
	return config.LoadEnvFiles(cfgFile)
}

// NewSearchCommand prints the entries of a file that hold a word
func NewSearchCommand(flags *Flags, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "search <file> <word>",
		Short:        "Print the entries of a file holding a word",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(flags, v)
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := app.Dictionary.Import(args[0], nil); err != nil {
				return err
			}

			q := domain.Translation{
				Language: domain.Truncate(flags.Language, domain.MaxTokenLength),
				Word:     domain.Truncate(args[1], domain.MaxTokenLength),
			}
			count, err := app.Dictionary.Search(q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for n := 1; n <= count; n++ {
				_, entry, err := app.Dictionary.MatchAt(q, n)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Entry %d of %d\n", n, count)
				writeEntry(out, entry)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Only match the word in this language")

	return cmd
}

// NewTranslateCommand prints the translations of a word found in a file
func NewTranslateCommand(flags *Flags, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:          "translate <file> <language> <word> <target>",
		Short:        "Translate a word with the entries of a file",
		Args:         cobra.ExactArgs(4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(flags, v)
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := app.Dictionary.Import(args[0], nil); err != nil {
				return err
			}

			source := domain.Translation{
				Language: domain.Truncate(args[1], domain.MaxTokenLength),
				Word:     domain.Truncate(args[2], domain.MaxTokenLength),
			}
			words, err := app.Dictionary.Translate(source, domain.Truncate(args[3], domain.MaxTokenLength))
			if err != nil {
				return err
			}

			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func writeEntry(w io.Writer, e domain.Entry) {
	for _, t := range e.Translations {
		fmt.Fprintf(w, "  %s\n", t)
	}
}
