/*
Package main implements the WordSleuth solver CLI and IPC server.

WordSleuth is a decision-support tool for Wordle-type word puzzles. You enter
each guess together with the per-letter feedback the puzzle gave you, and it
derives the logical constraints on the hidden word, filters the dictionaries
down to consistent candidates and suggests the guesses that probe the most
statistically useful letters next.

# Usage

Run the interactive prompt with default settings:

	wordsleuth

Each try is entered as word:symbols, where the symbols use '#' for a letter
in the right spot, '?' for a letter in the word but in a wrong spot, and '_'
for a letter not in the word:

	crane:_?#__

All-'#' feedback means the word was found and resets the round. The commands
!done, !tries and !remove_last reset the round, list the entered tries and
remove the last try.

Run as a msgpack IPC server over stdin/stdout instead:

	wordsleuth -serve

# Word sources

Word lists are plain text, one word per line, filtered to the configured
word length. By default words ending in "s" are dropped unless they end in
"ss", so simple plurals don't crowd out likelier answers; -plurals keeps
them. Several lists can be configured with per-list try budgets: a small
curated list serves the first guesses and a full dictionary takes over once
its budget is spent. An optional tab-separated score file reorders
suggestions by external scores instead of letter probability.

# Configuration

Runtime configuration is managed through a TOML file created with defaults
on first run:

	[solver]
	word_length = 5
	exclude_plurals = true

	[sources]
	word_lists = ["english_words.txt", "english_full.txt"]
	max_tries = [2, 0]

	[cli]
	suggest_limit = 15

# Command Line Flags

	-length int
	    The length (number of letters) of the hidden word (default 5)
	-plurals
	    Do not exclude plurals when loading from the word list
	-limit int
	    Number of suggestions to show (default from config)
	-serve
	    Run the msgpack IPC server instead of the interactive prompt
	-config string
	    Path to a config file
	-d  Enable debug mode with detailed logging
	-version
	    Show current version

Positional arguments override the configured word list paths. Termination is
via interrupt signal.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordsleuth/internal/cli"
	"github.com/bastiangx/wordsleuth/internal/logger"
	"github.com/bastiangx/wordsleuth/internal/utils"
	"github.com/bastiangx/wordsleuth/pkg/config"
	"github.com/bastiangx/wordsleuth/pkg/dictionary"
	"github.com/bastiangx/wordsleuth/pkg/server"
	"github.com/bastiangx/wordsleuth/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordsleuth"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionaries and the solver together and hands off to
// the prompt loop or the IPC server. No solving logic lives here.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server instead of the interactive prompt")
	wordLength := flag.Int("length", defaults.Solver.WordLength, "The length (number of letters) of the hidden word")
	plurals := flag.Bool("plurals", false, "Do not exclude plurals when loading from the word list")
	limit := flag.Int("limit", defaults.CLI.SuggestLimit, "Number of suggestions to show")
	configPath := flag.String("config", "", "Path to a config file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: (%s)", utils.GetAbsolutePath(activePath))

	// Flags override config; positional args override the word list paths.
	appConfig.Solver.WordLength = *wordLength
	appConfig.Solver.ExcludePlurals = !*plurals
	if paths := flag.Args(); len(paths) > 0 {
		appConfig.Sources.WordLists = paths
	}

	dicts, sources := loadSources(appConfig)
	if len(sources) == 0 {
		log.Fatal("No word lists could be loaded")
	}

	var scores map[string]float64
	if appConfig.Sources.ScoreFile != "" {
		scores, err = dictionary.LoadScores(appConfig.Sources.ScoreFile)
		if err != nil {
			log.Fatalf("Failed to load score file: %v", err)
		}
	}

	multi := solver.NewMulti(sources, solver.Options{
		WordLength:       appConfig.Solver.WordLength,
		Scores:           scores,
		OrderByScoreDesc: appConfig.Solver.OrderByScoreDesc,
	}, appConfig.Sources.MaxTries)

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(multi, dicts)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	log.SetReportTimestamp(false)
	showStartupInfo(appConfig)

	handler := cli.NewInputHandler(multi, dicts, *limit)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// loadSources loads every configured word list, skipping the ones that fail
// so a missing optional dictionary doesn't kill the session.
func loadSources(cfg *config.Config) ([]*dictionary.Dictionary, []solver.Source) {
	var dicts []*dictionary.Dictionary
	var sources []solver.Source
	for _, path := range cfg.Sources.WordLists {
		d, err := dictionary.Load(path, cfg.Solver.WordLength, cfg.Solver.ExcludePlurals)
		if err != nil {
			log.Warnf("Skipping word list %s: %v", path, err)
			continue
		}
		dicts = append(dicts, d)
		sources = append(sources, solver.Source{ID: d.Path, Words: d.Words})
	}
	return dicts, sources
}

func printVersion() {
	l := logger.Default("")

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordSleuth ] The word-guess solver CLI")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the session.
func showStartupInfo(cfg *config.Config) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" WordSleuth ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Word length: %d", cfg.Solver.WordLength)
	log.Infof("Plurals excluded: %v", cfg.Solver.ExcludePlurals)
	log.Infof("Word lists: %v", cfg.Sources.WordLists)
	println("Press Ctrl+C to exit")
	println("")

	log.SetLevel(currentLevel)
}
