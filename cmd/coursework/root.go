package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "coursework",
		Short:         "Notification center and course workload exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.language, "lang", "", "Output language (en, pt-BR)")
	rootCmd.PersistentFlags().BoolVar(&flags.noJournal, "no-journal", false, "Do not record the session in the journal")
	rootCmd.PersistentFlags().StringVar(&flags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile after the session")

	rootCmd.AddCommand(newNotifyCommand(ctx))
	rootCmd.AddCommand(newCourseCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
