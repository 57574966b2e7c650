package commands

import (
	"github.com/sparkifire/gemini-check/internal/apikey"
	"github.com/sparkifire/gemini-check/internal/gemini"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	// This is the usage for the plain root command without subcommands.
	Use:   "gemini-check",
	Short: "Check that a Gemini API key works with a single request",
	Long: `This tool finds the Gemini API key used by the sparkifire web project,
sends one prompt to the Generative Language API and prints the response.`,
	Args:              cobra.NoArgs,
	Run:               runRootCmd,
	PersistentPreRunE: initLogger,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

const defaultCmd = "check"

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once to
// the rootCmd.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().String("key", "", "API key for Google AI; overrides env vars and the env file")
	rootCmd.PersistentFlags().String("env-file", apikey.DefaultEnvFile, "dotenv file to search for the API key")
	rootCmd.PersistentFlags().String("model", gemini.DefaultModel, "model to use")
	rootCmd.PersistentFlags().String("proxy", "", "URL of an HTTP proxy to send requests through")
	rootCmd.PersistentFlags().Bool("debug", false, "log diagnostics to stderr")

	addCheckFlags(rootCmd)
}

func runRootCmd(cmd *cobra.Command, args []string) {
	checkCmd.Run(cmd, args)
}
