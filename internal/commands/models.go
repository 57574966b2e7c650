package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/api/iterator"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the Gemini models the API key can see",
	Args:  cobra.ExactArgs(0),
	Long:  strings.TrimSpace(modelsUsage),
	Run:   runModelsCmd,
}

var modelsUsage = `
List the Gemini models available to the resolved API key, along with some
details about each model. A key that can list models but gets an error from
'check' usually points at a model name that isn't enabled for it.

Many of these may start with a 'models/' prefix; when you pass a model name to
the '--model' flag of other commands, you may omit the prefix for brevity.

Explanation of some non-obvious columns in the output:

* Max In: the maximal number of input tokens supported by the model
* Max Out: the maximal number of output tokens supported by the model
`

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.SetHelpFunc(func(command *cobra.Command, strings []string) {
		command.Flags().MarkHidden("model")
		command.Parent().HelpFunc()(command, strings)
	})
}

func runModelsCmd(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	client, err := newGenaiClient(ctx, cmd)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 6, 16, 1, '\t', 0)
	fmt.Fprintf(w, "%-32s\tVersion\tMax In\tMax Out\tDescription\n", "Name")
	fmt.Fprintf(w, "\n")

	iter := client.ListModels(ctx)
	for {
		mi, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatal("error listing models: ", err)
		}

		fmt.Fprintf(w, "%-32s\t%s\t%v\t%v\t%s\n", mi.Name, mi.Version, mi.InputTokenLimit, mi.OutputTokenLimit, mi.Description)
		w.Flush()
	}
	log.Debug("done listing models")
}
