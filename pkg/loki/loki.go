package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Minimal push client for the Loki HTTP API, batching log lines in a
// background goroutine.

type Logger interface {
	Error(msg string, args ...any)
}

type Config struct {

	// Url of the loki server, e.g. https://example-prod.grafana.net/loki/api/v1/push
	Url string `validate:"required"`

	// BatchMaxSize is the maximum number of log lines sent in one request.
	BatchMaxSize int `validate:"gte=1"`

	// BatchMaxWait is the maximum time to wait before sending a request.
	BatchMaxWait time.Duration `validate:"gte=1"`

	// Labels are attached to every pushed stream.
	Labels map[string]string

	// Username/Password enable basic auth when both are set.
	Username string
	Password string
}

func (cfg *Config) setDefaults() {
	if cfg.BatchMaxSize == 0 {
		cfg.BatchMaxSize = 1000
	}
	if cfg.BatchMaxWait == 0 {
		cfg.BatchMaxWait = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type LogEntry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller"`
}

type streamValue []string

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values []streamValue     `json:"values"`
}

type Pusher struct {
	config    *Config
	ctx       context.Context
	cancel    context.CancelFunc
	client    *http.Client
	quit      chan struct{}
	entry     chan LogEntry
	waitGroup sync.WaitGroup
	batch     []streamValue
	logger    Logger
}

func New(ctx context.Context, cfg Config, logger Logger) (*Pusher, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Pusher{
		config: &cfg,
		ctx:    ctx,
		cancel: cancel,
		client: &http.Client{},
		quit:   make(chan struct{}),
		entry:  make(chan LogEntry),
		batch:  make([]streamValue, 0, cfg.BatchMaxSize),
		logger: logger,
	}

	p.waitGroup.Add(1)
	go p.run()
	return p, nil
}

// Push queues a log line for the next batch.
func (p *Pusher) Push(e LogEntry) error {
	p.entry <- e
	return nil
}

// Stop flushes the pending batch and stops the background goroutine.
func (p *Pusher) Stop() {
	close(p.quit)
	p.waitGroup.Wait()
	p.cancel()
}

func (p *Pusher) run() {
	ticker := time.NewTicker(p.config.BatchMaxWait)
	defer ticker.Stop()

	defer func() {
		if len(p.batch) > 0 {
			p.flush()
		}
		p.waitGroup.Done()
	}()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-p.quit:
			return
		case entry := <-p.entry:
			p.batch = append(p.batch, newValue(entry))
			if len(p.batch) >= p.config.BatchMaxSize {
				p.flush()
			}
		case <-ticker.C:
			if len(p.batch) > 0 {
				p.flush()
			}
		}
	}
}

func (p *Pusher) flush() {
	if err := p.send(); err != nil {
		p.logger.Error("failed to send logs", "error", err)
	}
	p.batch = p.batch[:0]
}

func newValue(entry LogEntry) streamValue {
	entryJson, err := json.Marshal(entry)
	if err != nil {
		return nil
	}
	timestamp := strconv.FormatInt(time.Now().UnixNano(), 10)
	return []string{timestamp, string(entryJson)}
}

func (p *Pusher) send() error {
	buf := bytes.NewBuffer([]byte{})
	gz := gzip.NewWriter(buf)

	if err := json.NewEncoder(gz).Encode(pushRequest{Streams: []stream{{
		Stream: p.config.Labels,
		Values: p.batch,
	}}}); err != nil {
		return err
	}

	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(p.ctx, http.MethodPost, p.config.Url, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	if p.config.Username != "" && p.config.Password != "" {
		req.SetBasicAuth(p.config.Username, p.config.Password)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("received unexpected response code from Loki: %s, body: %s", resp.Status, string(body))
	}

	return nil
}
