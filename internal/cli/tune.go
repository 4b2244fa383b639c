package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/feedcard/feedcard/pkg/layout"
	"github.com/feedcard/feedcard/pkg/normalize"
	"github.com/feedcard/feedcard/pkg/style"
)

// sampleRecords exercise the interesting wrap cases: a long title with an
// author, a canonical movie title, and a track with a long artist name.
func sampleRecords() []normalize.Record {
	return []normalize.Record{
		{
			Kind:      normalize.Read,
			Label:     "Last Read",
			Primary:   "The Hitchhiker's Guide to the Galaxy",
			Secondary: "Douglas Adams",
		},
		{
			Kind:    normalize.Watched,
			Label:   "Last Watched",
			Primary: "Everything Everywhere All at Once (2022)",
		},
		{
			Kind:      normalize.Listened,
			Label:     "Now Listening To",
			Primary:   "The Concept of Love",
			Secondary: "Hideki Naganuma",
		},
	}
}

func newTuneCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Interactively tune the card's width and wrap slack",
		Long: `Tune opens an interactive preview against sample records. Arrow keys adjust
the card width and the wrap slack; watching the lines re-wrap makes it easy to
pick values before committing them to the config file. Enter prints the
resulting TOML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTune(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file to start from (TOML)")
	return cmd
}

func runTune(configPath string) error {
	cfg := style.Default()
	var sources style.Sources
	if configPath != "" {
		file, err := style.Load(configPath)
		if err != nil {
			return err
		}
		cfg = file.Style
		sources = file.Sources
	}

	m := tuneModel{cfg: cfg, sources: sources}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	result, ok := final.(tuneModel)
	if !ok || !result.accepted {
		return nil
	}

	out, err := style.File{Style: result.cfg, Sources: result.sources}.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// tuneModel is the bubbletea model for the interactive tuner.
type tuneModel struct {
	cfg      style.Config
	sources  style.Sources
	accepted bool
}

func (m tuneModel) Init() tea.Cmd {
	return nil
}

func (m tuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.accepted = true
		return m, tea.Quit
	case "left":
		m.cfg.BlockWidthPx = max(m.cfg.BlockWidthPx-20, 200)
	case "right":
		m.cfg.BlockWidthPx += 20
	case "up":
		m.cfg.SeparatorSlackChars++
	case "down":
		m.cfg.SeparatorSlackChars = max(m.cfg.SeparatorSlackChars-1, 0)
	case "[":
		m.cfg.LabelColumnWidthPx = max(m.cfg.LabelColumnWidthPx-8, 64)
	case "]":
		m.cfg.LabelColumnWidthPx += 8
	}
	return m, nil
}

func (m tuneModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("feedcard tune"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ width  ↑/↓ slack  [/] label column  ⏎ accept  q quit"))
	b.WriteString("\n\n")

	l := layout.Compose(m.cfg, sampleRecords())
	b.WriteString(renderTerminalCard(l, 20))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("width %.0fpx  label column %.0fpx  slack %d  height %.0fpx\n",
		m.cfg.BlockWidthPx, m.cfg.LabelColumnWidthPx, m.cfg.SeparatorSlackChars, l.Height))
	return b.String()
}
