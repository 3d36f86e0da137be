// Command coach is the terminal client for the SpeechCoach gateway: record
// or paste a presentation script, get it analyzed, browse past analyses and
// chart your progress.
package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	log     = logrus.New()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "Analyze presentation scripts for nervousness, confidence and clarity",
	Long: `Coach records or reads a presentation script, sends it to the SpeechCoach
gateway for analysis, and shows score gauges, detected issues, an improved
script and speaking tips. Recorded audio also contributes voice-derived
nervousness and confidence signals.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&logrus.TextFormatter{})
		log.SetOutput(os.Stderr)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func serverURL() string {
	return strings.TrimSuffix(viper.GetString("server_url"), "/")
}

func init() {
	viper.SetEnvPrefix("SPEECHCOACH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("server_url", "http://localhost:8080")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().String("server", "", "gateway base URL")
	_ = viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
