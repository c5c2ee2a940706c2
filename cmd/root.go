package cmd

import (
	"github.com/astforge/astforge/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debug      bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "astforge",
	Short: "astforge inspects class declarations and synthesizes code from them",
	Long:  "astforge loads Java class declarations, walks their hierarchy, filters retained annotations and renders synthesized constructors as Go source",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if debug {
			level = log.DebugLevel
		}
		log.SetLevel(level)
		log.WithField("config", configFile).Debug("configuration loaded")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debugging output")
	cobra.MarkFlagFilename(rootCmd.PersistentFlags(), "config", "yaml", "yml")
}
