// Package cli handles the interactive chat loop: every submitted sentence is
// folded into the corpus and analyzed against its own last word.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/lexiserve/internal/logger"
	"github.com/bastiangx/lexiserve/internal/utils"
	"github.com/bastiangx/lexiserve/pkg/analyze"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	countStyle = lipgloss.NewStyle().Faint(true)
)

// InputHandler reads sentences from stdin, ingests each one and renders the
// four query results for the sentence's last word.
type InputHandler struct {
	engine       analyze.IAnalyzer
	topN         int
	suggestLimit int
	placeholder  string
	noFilter     bool
	out          *log.Logger
	messageCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine analyze.IAnalyzer, topN, limit int, placeholder string, noFilter bool) *InputHandler {
	return &InputHandler{
		engine:       engine,
		topN:         topN,
		suggestLimit: limit,
		placeholder:  placeholder,
		noFilter:     noFilter,
		out:          logger.New(""),
	}
}

// Start begins the chat loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed sentence to handleMessage() for processing.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	h.out.Print("LexiServe chat")
	reader := bufio.NewReader(os.Stdin)
	h.out.Print("type a sentence and press Enter to see the analysis (Ctrl+C to exit):")

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleMessage(line)
	}
}

// handleMessage ingests one sentence and renders the analysis of its last word
func (h *InputHandler) handleMessage(text string) {
	h.messageCount++

	start := time.Now()
	n := h.engine.Ingest(text)
	if n == 0 {
		log.Warnf("Nothing to ingest in: '%s'", text)
		return
	}

	last, _ := analyze.LastWord(text)

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter && !utils.IsValidWord(last) {
		log.Debugf("Last word '%s' filtered out, skipping analysis", last)
		h.out.Print(h.placeholder)
		return
	}

	summary := h.engine.Summarize(last, h.topN, h.suggestLimit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for message #%d", elapsed, h.messageCount)

	if summary.Empty() {
		h.out.Print(h.placeholder)
		return
	}
	h.render(summary)
}

// render prints the multi-line summary for one analyzed word
func (h *InputHandler) render(s analyze.Summary) {
	h.out.Printf("analysis for %s", wordStyle.Render(s.Word))

	if len(s.Top) > 0 {
		h.out.Print(labelStyle.Render("most frequent words so far:"))
		for i, w := range s.Top {
			h.out.Printf("%2d. %-24s %s", i+1, wordStyle.Render(w.Word),
				countStyle.Render(fmt.Sprintf("(%s)", utils.FormatWithCommas(w.Frequency))))
		}
	}
	if len(s.Completions) > 0 {
		h.out.Printf("%s %s", labelStyle.Render("words starting with"), wordStyle.Render(s.Word))
		h.out.Print("    " + joinWords(s.Completions))
	}
	if s.HasNext {
		h.out.Printf("%s %s", labelStyle.Render("most likely next word:"), wordStyle.Render(s.Next))
	}
	if len(s.Related) > 0 {
		h.out.Printf("%s %s", labelStyle.Render("words seen after it:"), strings.Join(s.Related, ", "))
	}
}

func joinWords(suggestions []analyze.Suggestion) string {
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	return strings.Join(words, ", ")
}
