package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gamedex/internal/config"
	"gamedex/internal/display"
	"gamedex/internal/igdb"
	"gamedex/internal/logging"
	"gamedex/internal/lookup"
)

func newLookupCommand(ctx *commandContext) *cobra.Command {
	var pickFirst bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lookup [query...]",
		Short: "Resolve a game name or IGDB URL to a normalized record",
		Long: `Resolve free text or an IGDB game URL to a normalized, display-ready record.

A URL of the form .../games/<slug> triggers an exact-match lookup; typed names
are slugified for the exact match first and fall back to a free-text search.
When several candidates match, a numbered table is shown for selection.

Examples:
  gamedex lookup half-life 2
  gamedex lookup https://www.igdb.com/games/outer-wilds
  gamedex lookup --first --json portal`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			logger = logger.With(logging.String(logging.FieldCorrelation, uuid.NewString()))

			// One reader for the whole invocation: a fresh bufio.Reader per
			// prompt would buffer past the first line and lose the selection
			// when both arrive on piped stdin.
			stdin := bufio.NewReader(cmd.InOrStdin())

			input := strings.TrimSpace(strings.Join(args, " "))
			if input == "" {
				input, err = promptLine(cmd, stdin, "Enter IGDB game name or URL: ")
				if err != nil {
					return err
				}
			}
			if input == "" {
				return lookup.Wrap(lookup.ErrInputAborted, "cli", "lookup", "no input entered", nil)
			}

			session, err := lookup.NewSession(cfg, logger)
			if err != nil {
				return err
			}

			start := time.Now()
			games, err := session.Find(cmd.Context(), input)
			if err != nil {
				return err
			}
			logger.Debug("lookup finished",
				logging.Int("candidates", len(games)),
				logging.Duration("elapsed", time.Since(start)))

			selected, err := selectCandidate(cmd, stdin, games, pickFirst)
			if err != nil {
				return err
			}

			record := display.Normalize(*selected, imageTokens(cfg))
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(record)
			}
			printRecord(cmd, record)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pickFirst, "first", false, "Select the first candidate without prompting")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the normalized record as JSON")
	return cmd
}

func imageTokens(cfg *config.Config) display.ImageTokens {
	return display.ImageTokens{
		Source: cfg.Images.SourceToken,
		Cover:  cfg.Images.CoverToken,
		Logo:   cfg.Images.LogoToken,
	}
}

// promptLine reads one line from the shared invocation reader. The prompt
// text is only printed when stdin is a terminal, so piped input stays clean.
func promptLine(cmd *cobra.Command, stdin *bufio.Reader, prompt string) (string, error) {
	if file, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		fmt.Fprint(cmd.OutOrStdout(), prompt)
	}
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}
	return strings.TrimSpace(line), nil
}

// selectCandidate resolves the user's pick among candidates. A single
// candidate (or --first) short-circuits the prompt; an empty or invalid
// selection aborts the invocation.
func selectCandidate(cmd *cobra.Command, stdin *bufio.Reader, games []igdb.Game, pickFirst bool) (*igdb.Game, error) {
	if len(games) == 1 || pickFirst {
		return &games[0], nil
	}

	rows := make([][]string, 0, len(games))
	for i, game := range games {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			display.SuggestionTitle(game),
			display.Platforms(game),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "Title", "Platforms"}, rows, 1))

	choice, err := promptLine(cmd, stdin, fmt.Sprintf("Select a game [1-%d]: ", len(games)))
	if err != nil {
		return nil, err
	}
	index, convErr := strconv.Atoi(choice)
	if choice == "" || convErr != nil || index < 1 || index > len(games) {
		return nil, lookup.Wrap(lookup.ErrInputAborted, "cli", "lookup", "no choice selected", nil)
	}
	return &games[index-1], nil
}

func printRecord(cmd *cobra.Command, record display.Record) {
	rows := [][]string{
		{"File name", record.FileName},
		{"Genres", record.Genres},
		{"Developer", record.DeveloperName},
		{"Developer logo", record.DeveloperLogo},
		{"Thumbnail", record.Thumbnail},
		{"Release year", record.ReleaseYear},
		{"Rating", record.Rating},
		{"Platforms", record.Platforms},
		{"Plot", record.Plot},
		{"URL", record.URL},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows))
}
