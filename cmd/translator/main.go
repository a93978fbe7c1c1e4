package main

import (
	"fmt"
	"os"

	"translator/internal/cli"

	"github.com/spf13/viper"
)

func main() {
	flags := cli.NewFlags()
	v := viper.New()

	rootCmd := cli.CreateRootCommand(flags, v)
	rootCmd.AddCommand(
		cli.NewSearchCommand(flags, v),
		cli.NewTranslateCommand(flags, v),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
