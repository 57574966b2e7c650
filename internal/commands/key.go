package commands

import (
	"fmt"
	"strings"

	"github.com/sparkifire/gemini-check/internal/apikey"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Show which API key would be used",
	Args:  cobra.NoArgs,
	Long:  strings.TrimSpace(keyUsage),
	Run:   runKeyCmd,
}

var keyUsage = `
Resolve the API key the same way the other commands do, and print where it
was found along with a redacted form of it. No request is sent.

The key is taken from the first of these that is non-empty:

* the --key flag
* the GEMINI_API_KEY env var
* the VITE_GEMINI_API_KEY env var
* the first GEMINI_API_KEY= or VITE_GEMINI_API_KEY= line of the env file
  (--env-file, sparkifire-web/.env by default)
`

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKeyCmd(cmd *cobra.Command, args []string) {
	key := mustResolveKey(cmd)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key.Source, apikey.Redact(key.Value))
}

// mustResolveKey resolves the API key from cmd's flags, the environment and
// the env file. It fails with log.Fatal if no source produces a non-empty
// key.
func mustResolveKey(cmd *cobra.Command) apikey.Key {
	r := apikey.Resolver{
		Flag:    mustGetStringFlag(cmd, "key"),
		EnvFile: mustGetStringFlag(cmd, "env-file"),
	}
	key, err := r.Resolve()
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("source", key.Source).Debugf("using API key %s", apikey.Redact(key.Value))
	return key
}
