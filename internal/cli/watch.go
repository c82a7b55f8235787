package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/caption"
)

// Watch styles
var (
	watchLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	watchBarStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	watchOffStyle   = lipgloss.NewStyle().Foreground(colorDim)
	watchOnStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
)

const (
	defaultBarWidth = 30
	minBarWidth     = 10
)

// watchCommand creates the watch command for live playback.
func (c *CLI) watchCommand() *cobra.Command {
	var round int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Play the animation live in the terminal",
		Long: `Play the animation live in the terminal.

Shows petal growth, overlap gating, caption fades and the composition opacity
as the sequencer runs in real time. Press q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), cmd, round)
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "caption round of the first cycle")
	return cmd
}

func (c *CLI) runWatch(ctx context.Context, cmd *cobra.Command, round int) error {
	cfg, f, err := c.scene()
	if err != nil {
		return err
	}
	rounds := cfg.CaptionRounds()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(newWatchModel(rounds),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	surface := anim.SurfaceFunc(func(_ context.Context, state anim.VisualState, changes anim.Changes) error {
		if !changes.Empty() {
			prog.Send(frameMsg{state: state})
		}
		return nil
	})
	seq := anim.NewSequencer(f, len(rounds), cfg.AnimTiming(), anim.WithStartRound(round))
	player := anim.NewPlayer(seq, surface, c.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := player.Run(gctx); !stderrors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		if _, err := prog.Run(); err != nil {
			if stderrors.Is(err, tea.ErrProgramKilled) {
				return context.Canceled
			}
			return err
		}
		return nil
	})
	return g.Wait()
}

// =============================================================================
// watchModel - live sequencer view
// =============================================================================

// frameMsg carries one applied frame into the bubbletea loop.
type frameMsg struct {
	state anim.VisualState
}

type watchModel struct {
	rounds   []caption.Round
	state    anim.VisualState
	frames   int
	barWidth int
}

func newWatchModel(rounds []caption.Round) watchModel {
	return watchModel{rounds: rounds, barWidth: defaultBarWidth}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.barWidth = max(min(msg.Width-30, defaultBarWidth*2), minBarWidth)
	case frameMsg:
		m.state = msg.state
		m.frames++
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	s := m.state

	b.WriteString(StyleTitle.Render("Bloom"))
	fmt.Fprintf(&b, "  %s\n\n", StyleDim.Render(fmt.Sprintf("round %d/%d · cycle %d · %s",
		s.Round+1, max(len(m.rounds), 1), s.Cycle+1, stageLabel(s))))

	b.WriteString(StyleHighlight.Render("Petals") + "\n")
	for i, p := range s.Progress {
		fmt.Fprintf(&b, "%s%s %s %s\n", watchLabelStyle.Render(fmt.Sprintf("  %d", i)),
			bar(p, m.barWidth), StyleNumber.Render(fmt.Sprintf("%.2f", p)),
			StyleDim.Render(fmt.Sprintf("r=%.1f", s.Radii[i])))
	}

	b.WriteString("\n" + StyleHighlight.Render("Overlaps") + "\n")
	for _, o := range s.Overlaps {
		label := watchLabelStyle.Render(fmt.Sprintf("  %d-%d", o.Petals[0], o.Petals[1]))
		fmt.Fprintf(&b, "%s%s\n", label, indicator(o.Opacity > 0, fmt.Sprintf("r=%.1f", o.Radius)))
	}
	fmt.Fprintf(&b, "%s%s\n", watchLabelStyle.Render("  center"), indicator(s.CenterVisible, ""))

	b.WriteString("\n" + StyleHighlight.Render("Captions") + "\n")
	var round caption.Round
	if len(m.rounds) > 0 {
		round = m.rounds[s.Round%len(m.rounds)]
	}
	for i, c := range s.Captions {
		text := strings.Join(round[i], " ")
		if !c.Visible {
			text = StyleDim.Render(text)
		}
		fmt.Fprintf(&b, "%s%s %s\n", watchLabelStyle.Render(fmt.Sprintf("  %d", i)), bar(c.Opacity, m.barWidth/3), text)
	}

	fmt.Fprintf(&b, "\n%s%s %s\n", watchLabelStyle.Render("opacity"), bar(s.Opacity, m.barWidth),
		StyleNumber.Render(fmt.Sprintf("%.2f", s.Opacity)))
	fmt.Fprintf(&b, "\n%s\n", StyleDim.Render(fmt.Sprintf("%d frames · q quit", m.frames)))
	return b.String()
}

func stageLabel(s anim.VisualState) string {
	if s.Stage == anim.StageGrow {
		return fmt.Sprintf("grow step %d", s.Step+1)
	}
	return s.Stage.String()
}

// bar draws v in [0,1] as a bar of width cells.
func bar(v float64, width int) string {
	width = max(width, 1)
	n := int(v*float64(width) + 0.5)
	n = min(max(n, 0), width)
	return watchBarStyle.Render(strings.Repeat("█", n)) + watchOffStyle.Render(strings.Repeat("░", width-n))
}

func indicator(on bool, detail string) string {
	if !on {
		return watchOffStyle.Render("○ hidden")
	}
	out := watchOnStyle.Render("● visible")
	if detail != "" {
		out += " " + StyleDim.Render(detail)
	}
	return out
}
