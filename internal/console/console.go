// Package console is the line-oriented human interface for interactive
// play: it prints run events as they happen, renders the player's view and
// reads commands.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/chamber"
	"github.com/pxdal/buckshot/internal/game"
	"github.com/pxdal/buckshot/internal/item"
)

// Console reads commands from in and writes everything to out.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	logger    *log.Logger
	formatter *game.EventFormatter
	onQuit    func()
}

// Option configures a Console
type Option func(*Console)

// WithQuit registers a callback run once when the player quits or input
// ends, typically a context cancel func.
func WithQuit(fn func()) Option {
	return func(c *Console) { c.onQuit = fn }
}

// WithLogger sets the console logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// WithNames sets the names used when printing events
func WithNames(player, dealer string) Option {
	return func(c *Console) {
		c.formatter = game.NewEventFormatter(game.FormattingOptions{
			Names:       [2]string{player, dealer},
			Perspective: game.Player,
			ShowEjected: true,
		})
	}
}

// New creates a console bound to in and out
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		logger: log.New(io.Discard),
		formatter: game.NewEventFormatter(game.FormattingOptions{
			Perspective: game.Player,
			ShowEjected: true,
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnEvent implements game.EventSubscriber
func (c *Console) OnEvent(event game.GameEvent) {
	text := c.formatter.Format(event)
	switch event.(type) {
	case game.SetLoadedEvent, game.RoundEndEvent, game.GameOverEvent:
		text = BannerStyle.Render(text)
	default:
		text = LogStyle.Render(text)
	}
	fmt.Fprintln(c.out, text)
}

// Prompt renders the view and reads commands until one parses. It matches
// the prompt function expected by game.NewHumanAgent.
func (c *Console) Prompt(view game.View, validActions []game.Action) (game.Action, error) {
	fmt.Fprintln(c.out, RenderView(view))

	for {
		fmt.Fprint(c.out, PromptStyle.Render("> "))
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				c.logger.Error("Reading input", "error", err)
			}
			c.quit()
			return game.Action{}, ErrQuit
		}

		line := c.in.Text()
		action, err := ParseCommand(line)
		switch {
		case err == nil:
			c.logger.Debug("Parsed command", "line", line, "action", action)
			return action, nil
		case errors.Is(err, ErrQuit):
			c.quit()
			return game.Action{}, err
		case errors.Is(err, errHelp):
			fmt.Fprintln(c.out, InfoStyle.Render(helpText))
			fmt.Fprintln(c.out, InfoStyle.Render("valid now: "+describeActions(validActions)))
		default:
			fmt.Fprintln(c.out, ErrorStyle.Render(err.Error()))
		}
	}
}

// Rejected prints why the engine refused an action
func (c *Console) Rejected(action game.Action, err error) {
	fmt.Fprintln(c.out, WarningStyle.Render(fmt.Sprintf("can't %s: %v", action, err)))
}

// Summary prints the end-of-run line
func (c *Console) Summary(res *game.RunResult) {
	var text string
	switch {
	case res.Died:
		text = fmt.Sprintf("You died after winning %d rounds (%d matches).", res.RoundsWon, res.MatchesWon)
	default:
		text = fmt.Sprintf("You walked away after winning %d rounds (%d matches).", res.RoundsWon, res.MatchesWon)
	}
	fmt.Fprintln(c.out, HeaderStyle.Render(text))
	fmt.Fprintln(c.out, InfoStyle.Render("run "+res.RunID))
}

func (c *Console) quit() {
	if c.onQuit != nil {
		c.onQuit()
		c.onQuit = nil
	}
}

// RenderView draws the player's view as a bordered panel.
func RenderView(v game.View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", HeaderStyle.Render(fmt.Sprintf("Round %d  Matches won %d", v.Round, v.MatchesWon)))
	fmt.Fprintf(&b, "You     %s %d/%d  %s\n", healthBar(v.Health, v.MaxHealth), v.Health, v.MaxHealth, formatItems(v.Items))
	fmt.Fprintf(&b, "Dealer  %s %d/%d  %s\n", healthBar(v.OpponentHealth, v.OpponentMaxHealth), v.OpponentHealth, v.OpponentMaxHealth, formatItems(v.OpponentItems))
	fmt.Fprintf(&b, "Chamber %s live, %s blank  known %s",
		LiveStyle.Render(fmt.Sprint(v.LiveLeft)),
		BlankStyle.Render(fmt.Sprint(v.BlankLeft)),
		formatKnown(v.Known))

	var flags []string
	if v.Handcuffed != game.Nobody {
		flags = append(flags, v.Handcuffed.String()+" handcuffed")
	}
	if v.SawedOff {
		flags = append(flags, "barrel sawed off")
	}
	if v.LastFired != nil {
		flags = append(flags, "last shot "+v.LastFired.String())
	}
	if v.CountsUncertain {
		flags = append(flags, "counts unsure since the inverter")
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, "\n%s", InfoStyle.Render(strings.Join(flags, "  ")))
	}

	return PanelStyle.Render(b.String())
}

func healthBar(health, maxHealth int) string {
	health = max(health, 0)
	return HealthStyle.Render(strings.Repeat("♥", health)) + strings.Repeat("♡", max(maxHealth-health, 0))
}

func formatItems(counts map[item.Kind]int) string {
	var parts []string
	for _, k := range item.All {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", k, n))
		}
	}
	if len(parts) == 0 {
		return "(no items)"
	}
	return strings.Join(parts, ", ")
}

func formatKnown(known []game.Knowledge) string {
	parts := make([]string, len(known))
	for i, k := range known {
		switch k {
		case game.KnownLive:
			parts[i] = LiveStyle.Render(chamber.Live.String())
		case game.KnownBlank:
			parts[i] = BlankStyle.Render(chamber.Blank.String())
		default:
			parts[i] = "?"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func describeActions(actions []game.Action) string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
