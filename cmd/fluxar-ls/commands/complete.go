package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fluxar-ls/am"
	"github.com/teranos/fluxar-ls/completion"
	"github.com/teranos/fluxar-ls/errors"
	"github.com/teranos/fluxar-ls/logger"
)

// CompleteCmd runs the completion providers without an editor
var CompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Print the suggestions for a line of Fluxar code",
	Long: `Run the completion providers against a one-line document with the
cursor at the end of the line, and print what an editor would be offered.

Examples:
  fluxar-ls complete --line "x = "
  fluxar-ls complete --line "x = foo.table." --trigger .
  fluxar-ls complete --line "table." --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		return runComplete(cmd.Context(), cmd.OutOrStdout(), cfg.GetLanguageID(), completeLine, completeTrigger, completeJSON)
	},
}

var (
	completeLine    string
	completeTrigger string
	completeJSON    bool
)

func init() {
	CompleteCmd.Flags().StringVar(&completeLine, "line", "", "Line of code; the cursor sits after its last character")
	CompleteCmd.Flags().StringVar(&completeTrigger, "trigger", "", "Trigger character, as if typed by the user (e.g. .)")
	CompleteCmd.Flags().BoolVarP(&completeJSON, "json", "j", false, "Output suggestions as JSON")
}

// completeItem is the JSON shape of one suggestion
type completeItem struct {
	Label         string `json:"label"`
	Kind          string `json:"kind"`
	InsertText    string `json:"insert_text"`
	Snippet       bool   `json:"snippet,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	Command       string `json:"command,omitempty"`
}

func runComplete(ctx context.Context, out io.Writer, languageID, line, trigger string, jsonOutput bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	registry := completion.NewRegistry(logger.ComponentLogger("completion"))
	ext := completion.Activate(registry, languageID, logger.ComponentLogger("completion"))
	defer ext.Deactivate()

	req := completion.Request{
		URI:        "untitled:complete.fsc",
		LanguageID: languageID,
		Text:       line,
		Position: completion.Position{
			Character: uint32(len(utf16.Encode([]rune(line)))),
		},
		TriggerCharacter: trigger,
	}

	suggestions, found := registry.Complete(ctx, req)
	items := make([]completeItem, 0, len(suggestions))
	for _, s := range suggestions {
		item := completeItem{
			Label:      s.Label,
			Kind:       s.Kind.String(),
			InsertText: s.InsertText(),
		}
		if _, ok := s.Insert.(completion.Snippet); ok {
			item.Snippet = true
		}
		if s.HasDocumentation() {
			item.Documentation = s.Documentation.Resolved()
		}
		if s.Command != nil {
			item.Command = s.Command.ID
		}
		items = append(items, item)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal suggestions to JSON")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if !found {
		fmt.Fprintln(out, pterm.Warning.Sprint("No suggestions"))
		return nil
	}

	data := pterm.TableData{{"Label", "Kind", "Insert", "Docs", "Command"}}
	for _, item := range items {
		data = append(data, []string{item.Label, item.Kind, fmt.Sprintf("%q", item.InsertText), item.Documentation, item.Command})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render suggestions")
	}
	fmt.Fprintln(out, table)
	fmt.Fprintln(out, pterm.Info.Sprintf("%d suggestions", len(items)))
	return nil
}
