/*
Package server implements msgpack IPC for corpus analytics services.

The server package provides a minimal interface for incremental text analytics using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports sentence ingestion, the four corpus queries, combined per-sentence analysis, and engine stats.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field, an action, and other fields based on the operation type.

Ingestion requests use mainly this structure:

	{"id": "msg_001", "a": "ingest", "t": "the cat sat on the mat"}

Query requests name a word and an optional limit:

	{"id": "q_001", "a": "complete", "w": "ca", "l": 8}
	{"id": "q_002", "a": "predict", "w": "the"}
	{"id": "q_003", "a": "related", "w": "the"}
	{"id": "q_004", "a": "top", "l": 5}

The analyze action ingests a sentence and answers all four queries for its
last word in a single round trip:

	{"id": "msg_002", "a": "analyze", "t": "the cat ran"}

Config messages allow adjustment of the response size ceiling without restart:

	{"id": "cfg_001", "a": "set_limit", "l": 32}

Response structures include status information and error details when an op fails.
Engine queries themselves are total: an unknown word or an empty corpus comes back as an empty result set, never as an error.
Error responses are reserved for protocol-level problems such as unknown actions or oversized payloads.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.
*/
package server

// Request is the single envelope for every client message
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a"`
	Text   string `msgpack:"t,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// WordEntry - one ranked word in a response
type WordEntry struct {
	Word  string `msgpack:"w"`
	Count int    `msgpack:"c"`
}

// IngestResponse - result of folding one sentence into the corpus
type IngestResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	Words     int    `msgpack:"n"`
	Distinct  int    `msgpack:"d"`
	TimeTaken int64  `msgpack:"t"`
}

// WordListResponse answers top and complete queries
type WordListResponse struct {
	ID        string      `msgpack:"id"`
	Words     []WordEntry `msgpack:"s"`
	Count     int         `msgpack:"c"`
	TimeTaken int64       `msgpack:"t"`
}

// PredictionResponse - most likely next word, Found false when the corpus
// holds no successor for the queried word
type PredictionResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w,omitempty"`
	Found     bool   `msgpack:"ok"`
	TimeTaken int64  `msgpack:"t"`
}

// RelatedResponse - distinct successors in first-observed order
type RelatedResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SummaryResponse bundles all four queries for the last word of an
// analyzed sentence
type SummaryResponse struct {
	ID          string      `msgpack:"id"`
	Word        string      `msgpack:"w"`
	Top         []WordEntry `msgpack:"top"`
	Completions []WordEntry `msgpack:"cmp"`
	Next        string      `msgpack:"nxt,omitempty"`
	HasNext     bool        `msgpack:"hn"`
	Related     []string    `msgpack:"rel"`
	TimeTaken   int64       `msgpack:"t"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID       string `msgpack:"id"`
	Status   string `msgpack:"status"`
	MaxLimit int    `msgpack:"max_limit"`
}

// StatsResponse - engine counters
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
