package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lycosa9527/mindgraph/pkg/spec"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newCommand creates the new command for scaffolding starter specs.
func (c *CLI) newCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new [type]",
		Short: "Scaffold a starter spec for a diagram type",
		Long: `Write a starter spec for a diagram type, ready to edit and render.

Without arguments, an interactive picker lists the supported types.

Examples:
  mindgraph new bubble_map            # writes bubble_map.json
  mindgraph new mind_map -o ideas.json
  mindgraph new                       # interactive picker`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var typeName string
			if len(args) == 1 {
				typeName = args[0]
			}
			return c.runNew(typeName, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <type>.json)")

	return cmd
}

// runNew resolves the type, interactively when absent, and writes the starter.
func (c *CLI) runNew(typeName, output string) error {
	if typeName == "" {
		selected, err := pickType()
		if err != nil {
			return err
		}
		if selected == "" {
			printDetail("No selection made")
			return nil
		}
		typeName = selected
	}

	t, _, err := spec.Lookup(typeName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(starterSpec(t), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := output
	if path == "" {
		path = string(t) + ".json"
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	printSuccess("Created %s starter", StyleHighlight.Render(string(t)))
	printFile(path)
	printNextStep("Render it", fmt.Sprintf("%s render %s", appName, path))
	return nil
}

// pickType runs the interactive type picker. It returns the selected type
// name, or "" when the user quit without choosing.
func pickType() (string, error) {
	m := NewTypeListModel(typeRows())
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(TypeListModel)
	if !ok {
		return "", nil
	}
	return fm.Selected, nil
}

// =============================================================================
// TypeListModel - Interactive type selection
// =============================================================================

// TypeListModel is the bubbletea model for interactive type selection.
type TypeListModel struct {
	Rows     []typeRow
	Cursor   int
	Selected string
}

// NewTypeListModel creates a new type list model.
func NewTypeListModel(rows []typeRow) TypeListModel {
	return TypeListModel{Rows: rows}
}

func (m TypeListModel) Init() tea.Cmd {
	return nil
}

func (m TypeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Rows[m.Cursor].name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TypeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram Type"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, r := range m.Rows {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-18s %s", cursor, r.name, listDimStyle.Render(r.family))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// =============================================================================
// Starter Specs
// =============================================================================

// starterSpec returns an editable example spec for the given type. Each
// starter is small, fills every required field, and validates as-is.
func starterSpec(t spec.Type) *spec.Graph {
	g := &spec.Graph{Type: t}
	switch t {
	case spec.TypeBubbleMap:
		g.Topic = "The Sun"
		g.Attributes = []string{"hot", "bright", "massive", "distant"}
	case spec.TypeCircleMap:
		g.Topic = "Photosynthesis"
		g.Context = []string{"sunlight", "water", "carbon dioxide", "chlorophyll", "oxygen"}
	case spec.TypeDoubleBubbleMap:
		g.Left = "Cats"
		g.Right = "Dogs"
		g.Similarities = []string{"pets", "four legs", "fur"}
		g.LeftDifferences = []string{"independent", "meow"}
		g.RightDifferences = []string{"pack animals", "bark"}
	case spec.TypeBridgeMap:
		g.RelatingFactor = "as"
		g.Analogies = []spec.Analogy{
			{Left: "puppy", Right: "dog"},
			{Left: "kitten", Right: "cat"},
			{Left: "calf", Right: "cow"},
		}
	case spec.TypeTreeMap:
		g.Topic = "Animals"
		g.Children = []spec.Branch{
			{Label: "Mammals", Children: []spec.Branch{{Label: "Whale"}, {Label: "Bear"}}},
			{Label: "Birds", Children: []spec.Branch{{Label: "Eagle"}, {Label: "Penguin"}}},
		}
	case spec.TypeFlowMap:
		g.Title = "Making tea"
		g.Steps = []spec.Step{
			{Text: "Boil water"},
			{Text: "Add tea leaves"},
			{Text: "Steep"},
			{Text: "Pour and enjoy"},
		}
		g.Substeps = []spec.SubstepGroup{
			{Step: "Steep", Substeps: []string{"3 min for green", "5 min for black"}},
		}
	case spec.TypeMultiFlowMap:
		g.Event = "Heavy rainfall"
		g.Causes = []string{"warm ocean air", "low pressure system"}
		g.Effects = []string{"flooding", "landslides", "crop damage"}
	case spec.TypeBraceMap:
		g.Topic = "A book"
		g.Parts = []spec.Part{
			{Name: "Cover", Subparts: []spec.Subpart{{Name: "Title"}, {Name: "Author"}}},
			{Name: "Pages", Subparts: []spec.Subpart{{Name: "Chapters"}, {Name: "Index"}}},
		}
	case spec.TypeFlowchart:
		g.Title = "Password reset"
		g.Steps = []spec.Step{
			{Kind: spec.StepStart, Text: "Request reset"},
			{Kind: spec.StepDecision, Text: "Email on file?"},
			{Kind: spec.StepProcess, Text: "Send reset link"},
			{Kind: spec.StepEnd, Text: "Done"},
		}
	case spec.TypeMindMap:
		g.Topic = "Renewable energy"
		g.Children = []spec.Branch{
			{Label: "Solar", Children: []spec.Branch{{Label: "Rooftop panels"}}},
			{Label: "Wind", Children: []spec.Branch{{Label: "Offshore farms"}}},
			{Label: "Hydro"},
		}
	case spec.TypeConceptMap:
		g.Topic = "Water cycle"
		g.Concepts = []string{"evaporation", "condensation", "precipitation"}
		g.Relationships = []spec.Relationship{
			{From: "Water cycle", To: "evaporation", Label: "starts with"},
			{From: "evaporation", To: "condensation", Label: "leads to"},
			{From: "condensation", To: "precipitation", Label: "produces"},
		}
	case spec.TypeSemanticWeb:
		g.Topic = "Healthy living"
		g.Branches = []spec.Branch{
			{Label: "Diet", Children: []spec.Branch{{Label: "Vegetables"}}},
			{Label: "Exercise", Children: []spec.Branch{{Label: "Walking"}}},
			{Label: "Sleep"},
		}
	case spec.TypeTimeline:
		g.Title = "Space exploration"
		g.Events = []spec.TimelineEvent{
			{Date: "1957", Title: "Sputnik 1 launches"},
			{Date: "1969", Title: "Apollo 11 lands on the Moon"},
			{Date: "1990", Title: "Hubble enters orbit"},
			{Date: "2021", Title: "James Webb launches"},
		}
	}
	return g
}
