/*
Package main implements the corpus analytics server and chat CLI application.

LexiServe incrementally analyzes a stream of user-submitted sentences and
answers four queries over the accumulated corpus: word frequency ranking,
prefix-based completion, most-likely-next-word prediction, and directed
word-adjacency lookup. It can operate as a MessagePack IPC server for
integration with chat frontends, or as an interactive CLI for exploring a
corpus by hand.

The corpus lives entirely in process memory for the lifetime of the session.
Every ingested sentence updates the prefix index, the transition table, the
adjacency graph and the frequency table from the same token sequence, so the
four structures always reflect an identical view of the input.

# Usage

Start the IPC server with default settings:

	lexiserve

Seed the corpus from a sentence file and enable debug logging:

	lexiserve -seed corpus.txt -d

Run in chat mode for interactive exploration:

	lexiserve -c -top 5 -limit 8

# Configuration

Runtime configuration is managed through a TOML file covering server limits,
engine defaults, and CLI behavior:

	[server]
	max_limit = 64
	max_text_len = 2048
	max_word_len = 60

	[engine]
	default_top_n = 10
	default_completions = 24
	seed_file = ""

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests carry an
id and an action; responses include microsecond timing.

Ingest a sentence:

	{"id": "m1", "a": "ingest", "t": "the cat sat"}

Analyze a sentence (ingest plus all four queries for its last word):

	{"id": "m2", "a": "analyze", "t": "the cat ran"}

Query the corpus directly:

	{"id": "q1", "a": "top", "l": 5}
	{"id": "q2", "a": "complete", "w": "ca"}
	{"id": "q3", "a": "predict", "w": "the"}
	{"id": "q4", "a": "related", "w": "the"}

# Chat Mode

Chat mode reads sentences from stdin. Each submitted sentence is ingested and
then analyzed against its own last word, with the results rendered as a
multi-line summary. When the corpus has nothing to say yet, a fixed
placeholder line is printed instead.

# Command Line Flags

The following flags control application behavior:

	-d  Enable debug mode with detailed logging
	-c  Run in chat CLI mode instead of server mode
	-config string
	    Custom config file path
	-seed string
	    Plain-text corpus file to ingest at startup (one sentence per line)
	-top int
	    Number of top words to show (chat mode)
	-limit int
	    Number of completions to show (chat mode)
	-no-filter
	    Disable last-word filtering in chat mode
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/lexiserve/internal/cli"
	"github.com/bastiangx/lexiserve/pkg/analyze"
	"github.com/bastiangx/lexiserve/pkg/config"
	"github.com/bastiangx/lexiserve/pkg/corpus"
	"github.com/bastiangx/lexiserve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "lexiserve"
	gh      = "https://github.com/bastiangx/lexiserve"
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

// main calls other packages to initialize the server or the chat CLI.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run chat CLI instead of the IPC server")
	configPath := flag.String("config", "", "Custom config file path")
	seedFile := flag.String("seed", "", "Plain-text corpus file to ingest at startup")
	topN := flag.Int("top", defaultConfig.CLI.DefaultTopN, "Number of top words to show in chat mode")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of completions to show in chat mode")
	noFilter := flag.Bool("no-filter", defaultConfig.CLI.DefaultNoFilter, "Disable last-word filtering in chat mode")

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
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	engine := analyze.NewEngine()

	seedPath := *seedFile
	if seedPath == "" {
		seedPath = appConfig.Engine.SeedFile
	}
	if seedPath != "" {
		loader := corpus.NewLoader(appConfig.Engine.MaxSeedLines, appConfig.Engine.MaxSeedLineLen)
		stats, err := loader.LoadFile(seedPath, engine)
		if err != nil {
			log.Fatalf("Failed to seed corpus from %s: %v", seedPath, err)
		}
		log.Debugf("Seeded %d sentences, %d words", stats.Lines, stats.Words)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Chat info:",
			"topN", *topN,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(engine, *topN, *limit, appConfig.CLI.Placeholder, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(engine, appConfig, activePath)

	showStartupInfo(engine)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// printVersion displays the styled version banner
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ LexiServe ] Incremental chat corpus analytics")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(engine analyze.IAnalyzer) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" LexiServe ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("corpus: %d distinct words", engine.Stats()["distinctWords"])
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
