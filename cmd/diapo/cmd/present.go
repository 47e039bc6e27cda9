package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"diapo/internal/adapters/deckfile"
	"diapo/internal/adapters/tui"
	"diapo/internal/adapters/tui/views"
	"diapo/internal/adapters/watch"
	"diapo/internal/config"
	"diapo/internal/domain"
)

var (
	statsFlag bool
	watchFlag bool
)

// navLogger writes a debug note for every committed navigation.
type navLogger struct{}

func (navLogger) OnNavigate(index int) {
	log.Printf("navigated to slide %d", index)
}

var presentCmd = &cobra.Command{
	Use:   "present <deck.md>",
	Short: "Present a deck full screen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		source := deckfile.NewSource()

		deck, err := source.Load(path)
		if err != nil {
			return err
		}

		if logPath := config.DebugLog(); logPath != "" {
			f, logErr := tea.LogToFile(logPath, "diapo")
			if logErr != nil {
				return logErr
			}
			defer f.Close()
			log.Printf("presenting %s (%d slides)", path, deck.Len())
		} else {
			log.SetOutput(io.Discard)
		}

		listeners := []domain.Listener{navLogger{}}
		var times *domain.ViewTimes
		if statsFlag {
			times = domain.NewViewTimesForDeck(deck, nil)
			listeners = append(listeners, times)
		}

		app := tui.NewApp(deck, config.Theme(), listeners...)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if watchFlag {
			go func() {
				if watchErr := watch.Watch(ctx, path, source, func(d *domain.Deck) {
					p.Send(views.DeckReloadedMsg{Deck: d})
				}); watchErr != nil {
					log.Printf("watch: %v", watchErr)
				}
			}()
		}

		if _, err := p.Run(); err != nil {
			return err
		}

		if times != nil {
			printReport(cmd.OutOrStdout(), times.Report())
		}
		return nil
	},
}

func printReport(w io.Writer, report domain.ViewTimeReport) {
	fmt.Fprintf(w, "Session: %s\n", report.Elapsed.Round(time.Second))

	indices := make([]int, 0, len(report.PerSlide))
	for i := range report.PerSlide {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	for _, i := range indices {
		fmt.Fprintf(w, "  slide %d: %s\n", i, report.PerSlide[i].Round(100*time.Millisecond))
	}
}

func init() {
	rootCmd.AddCommand(presentCmd)
	presentCmd.Flags().BoolVar(&statsFlag, "stats", false, "print per-slide view time on exit")
	presentCmd.Flags().BoolVar(&watchFlag, "watch", false, "reload the deck when the file changes")
}
