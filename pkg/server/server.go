package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/lexiserve/pkg/analyze"
	"github.com/bastiangx/lexiserve/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for corpus analytics
type Server struct {
	engine       analyze.IAnalyzer
	cfg          *config.Config
	cfgPath      string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates an analytics server using stdin/stdout for IPC.
// configPath is where runtime config updates get persisted, empty for none.
func NewServer(engine analyze.IAnalyzer, cfg *config.Config, configPath string) *Server {
	return NewServerWithStreams(engine, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithStreams wires the server to arbitrary streams, mainly for tests
func NewServerWithStreams(engine analyze.IAnalyzer, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:  engine,
		cfg:     cfg,
		cfgPath: configPath,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.sendResponse(map[string]string{"status": "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			// A message that won't decode means the stream is desynced,
			// there is no frame boundary to resume from.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a single decoded request
func (s *Server) handleRequest(request Request) {
	s.requestCount++
	log.Debugf("Request #%d: action=%s id=%s", s.requestCount, request.Action, request.ID)

	switch request.Action {
	case "ingest":
		s.handleIngest(request)
	case "analyze":
		s.handleAnalyze(request)
	case "top":
		s.handleTop(request)
	case "complete":
		s.handleComplete(request)
	case "predict":
		s.handlePredict(request)
	case "related":
		s.handleRelated(request)
	case "set_limit":
		s.handleSetLimit(request)
	case "stats":
		s.sendResponse(StatsResponse{ID: request.ID, Stats: s.engine.Stats()})
	case "health":
		s.sendResponse(map[string]string{"id": request.ID, "status": "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleIngest(request Request) {
	if !s.checkText(request) {
		return
	}

	start := time.Now()
	n := s.engine.Ingest(request.Text)
	stats := s.engine.Stats()

	s.sendResponse(IngestResponse{
		ID:        request.ID,
		Status:    "ok",
		Words:     n,
		Distinct:  stats["distinctWords"],
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// handleAnalyze ingests a sentence and answers all four queries for its last
// word, mirroring the per-message flow of the chat interface.
func (s *Server) handleAnalyze(request Request) {
	if !s.checkText(request) {
		return
	}

	start := time.Now()
	s.engine.Ingest(request.Text)

	last, ok := analyze.LastWord(request.Text)
	if !ok {
		// Whitespace-only text: nothing was ingested, nothing to summarize
		s.sendResponse(SummaryResponse{
			ID:        request.ID,
			TimeTaken: time.Since(start).Microseconds(),
		})
		return
	}

	summary := s.engine.Summarize(last, s.clampLimit(request.Limit, s.cfg.Engine.DefaultTopN), s.cfg.Engine.DefaultCompletions)

	s.sendResponse(SummaryResponse{
		ID:          request.ID,
		Word:        summary.Word,
		Top:         toEntries(summary.Top),
		Completions: toEntries(summary.Completions),
		Next:        summary.Next,
		HasNext:     summary.HasNext,
		Related:     summary.Related,
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleTop(request Request) {
	start := time.Now()
	words := s.engine.TopWords(s.clampLimit(request.Limit, s.cfg.Engine.DefaultTopN))

	s.sendResponse(WordListResponse{
		ID:        request.ID,
		Words:     toEntries(words),
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleComplete(request Request) {
	if !s.checkWord(request) {
		return
	}

	start := time.Now()
	words := s.engine.Completions(request.Word, s.clampLimit(request.Limit, s.cfg.Engine.DefaultCompletions))

	s.sendResponse(WordListResponse{
		ID:        request.ID,
		Words:     toEntries(words),
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handlePredict(request Request) {
	if !s.checkWord(request) {
		return
	}

	start := time.Now()
	next, found := s.engine.PredictNext(request.Word)

	s.sendResponse(PredictionResponse{
		ID:        request.ID,
		Word:      next,
		Found:     found,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleRelated(request Request) {
	if !s.checkWord(request) {
		return
	}

	start := time.Now()
	words := s.engine.RelatedWords(request.Word)

	s.sendResponse(RelatedResponse{
		ID:        request.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// handleSetLimit adjusts the response size ceiling at runtime, persisting it
// when the server knows its config path
func (s *Server) handleSetLimit(request Request) {
	if request.Limit < 1 {
		s.sendError(request.ID, "Missing or invalid 'l' parameter", 400)
		return
	}

	if err := s.cfg.Update(s.cfgPath, &request.Limit, nil, nil); err != nil {
		log.Errorf("Persisting config update: %v", err)
		s.sendError(request.ID, "Failed to persist config", 500)
		return
	}

	s.sendResponse(ConfigResponse{
		ID:       request.ID,
		Status:   "ok",
		MaxLimit: s.cfg.Server.MaxLimit,
	})
}

// checkText validates ingest/analyze payload limits
func (s *Server) checkText(request Request) bool {
	if max := s.cfg.Server.MaxTextLen; max > 0 && len(request.Text) > max {
		s.sendError(request.ID, fmt.Sprintf("Text exceeds maximum length of %d characters", max), 400)
		log.Debug("Text too long in request", "id", request.ID)
		return false
	}
	return true
}

// checkWord validates query word limits
func (s *Server) checkWord(request Request) bool {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		log.Debug("Word is empty in request", "id", request.ID)
		return false
	}
	if max := s.cfg.Server.MaxWordLen; max > 0 && len(request.Word) > max {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum length of %d characters", max), 400)
		log.Debug("Word is too long in request", "id", request.ID)
		return false
	}
	return true
}

// clampLimit applies the fallback and the configured ceiling to a client limit
func (s *Server) clampLimit(limit, fallback int) int {
	if limit < 1 {
		limit = fallback
	}
	if max := s.cfg.Server.MaxLimit; max > 0 && limit > max {
		limit = max
	}
	return limit
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

func toEntries(suggestions []analyze.Suggestion) []WordEntry {
	entries := make([]WordEntry, len(suggestions))
	for i, s := range suggestions {
		entries[i] = WordEntry{Word: s.Word, Count: s.Frequency}
	}
	return entries
}
