package progrock

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/cairn/internal/core/ports"
)

// Summary is a progrock.Writer that buffers vertex output and reports each
// vertex to the logger once it completes.
type Summary struct {
	logger ports.Logger

	mu     sync.Mutex
	output map[string]*bytes.Buffer
	done   map[string]bool
}

// NewSummary creates a Summary that reports to logger.
func NewSummary(logger ports.Logger) *Summary {
	return &Summary{
		logger: logger,
		output: make(map[string]*bytes.Buffer),
		done:   make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range update.Logs {
		buf, ok := s.output[l.Vertex]
		if !ok {
			buf = &bytes.Buffer{}
			s.output[l.Vertex] = buf
		}
		buf.Write(l.Data)
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || s.done[v.Id] {
			continue
		}
		s.done[v.Id] = true

		args := []any{"vertex", v.Name, "duration", v.Duration().Round(time.Millisecond).String()}
		if v.Cached {
			args = append(args, "cached", true)
		}
		if v.Error != nil {
			args = append(args, "error", v.GetError())
		}
		if buf, ok := s.output[v.Id]; ok {
			if out := strings.TrimSpace(buf.String()); out != "" {
				args = append(args, "output", out)
			}
			delete(s.output, v.Id)
		}
		s.logger.Debug("finished", args...)
	}
	return nil
}

// Close implements progrock.Writer.
func (s *Summary) Close() error {
	return nil
}
