package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lycosa9527/mindgraph/pkg/spec"
)

// typeRow is one line of the types table.
type typeRow struct {
	name     string
	family   string
	aliases  string
	required string
}

// typesCommand creates the types command listing the supported diagram types.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported diagram types",
		Long: `List the supported diagram types with their layout family, accepted
aliases, and the spec fields each type requires.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTypeTable(typeRows())
			return nil
		},
	}
}

// typeRows collects the type registry contents in sorted display order.
func typeRows() []typeRow {
	names := spec.Supported()
	rows := make([]typeRow, 0, len(names))
	for _, name := range names {
		_, cfg, err := spec.Lookup(name)
		if err != nil {
			continue // supported names always resolve
		}
		aliases := strings.Join(spec.Aliases(spec.Type(name)), ", ")
		if aliases == "" {
			aliases = "—"
		}
		rows = append(rows, typeRow{
			name:     name,
			family:   string(cfg.Family),
			aliases:  aliases,
			required: strings.Join(cfg.Required, ", "),
		})
	}
	return rows
}

// printTypeTable renders the rows as a bordered table with a usage hint.
func printTypeTable(rows []typeRow) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{r.name, r.family, r.aliases, r.required}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Family", "Aliases", "Required fields").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleHighlight
			case 2:
				return StyleDim
			default:
				return StyleValue
			}
		})

	fmt.Println(t.Render())
	printNewline()
	printDetail("Pass a type or alias with render --type, or set \"type\" in the spec itself.")
}
