// Package categories implements the command that lists category labels
package categories

import (
	"fjacquet/pocket-ledger/cmd/common"
	"fjacquet/pocket-ledger/cmd/root"
	"fjacquet/pocket-ledger/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = NewCommand()

// NewCommand builds the categories command with its flags.
func NewCommand() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories offered for each type",
		Long: `List the category labels for income and expense entries.

The built-in labels can be replaced with a categories.yaml file holding
"income" and "expense" lists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := models.Kinds
			if kind != "" {
				k, err := models.ParseKind(kind)
				if err != nil {
					return err
				}
				kinds = []models.Kind{k}
			}

			app, err := root.App()
			if err != nil {
				return err
			}
			return common.RenderCategories(cmd.OutOrStdout(), app.GetLedger().Categories(), kinds)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Only show income or expense categories")
	return cmd
}
