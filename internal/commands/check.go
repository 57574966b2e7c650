package commands

import (
	"context"
	"strings"
	"time"

	"github.com/sparkifire/gemini-check/internal/gemini"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"ping"},
	Short:   "Send one prompt to a Gemini model and print the raw response",
	Args:    cobra.NoArgs,
	Long:    strings.TrimSpace(checkUsage),
	Run:     runCheckCmd,
}

var checkUsage = `
Send a single generateContent request and print what came back. This is also
what running the tool without a command does.

On success, the HTTP status and the response body are printed. When the
server answers with an error status, the output is "HTTP error: <status>"
followed by the body. Any other failure (DNS, connection, timeout) is printed
as "Error: <description>". All three cases exit with status 0; only a missing
API key is fatal.
`

func init() {
	rootCmd.AddCommand(checkCmd)
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", gemini.DefaultEndpoint, "base URL of the Generative Language API")
	cmd.Flags().StringP("prompt", "p", gemini.DefaultPrompt, "prompt to send")
	cmd.Flags().Duration("timeout", gemini.DefaultTimeout, "timeout for the whole request")
}

func runCheckCmd(cmd *cobra.Command, args []string) {
	key := mustResolveKey(cmd)

	endpoint := mustGetStringFlag(cmd, "endpoint")
	model := mustGetStringFlag(cmd, "model")
	req, err := gemini.NewRequest(context.Background(), endpoint, model, key.Value, mustGetStringFlag(cmd, "prompt"))
	if err != nil {
		log.Fatal(err)
	}

	client := newHTTPClient(cmd, key.Value, mustGetDurationFlag(cmd, "timeout"))

	log.WithField("model", model).Debugf("POST %s/models/%s:generateContent", strings.TrimSuffix(endpoint, "/"), model)
	start := time.Now()
	outcome := gemini.Send(client, req)
	log.WithField("outcome", outcome.Kind).Debugf("request finished in %v", time.Since(start))

	if err := outcome.Report(cmd.OutOrStdout()); err != nil {
		log.Fatal(err)
	}
}
