package videobackend

import "sync"

// lineCollector keeps everything written to it as lines, treating carriage
// returns as line breaks too since ffmpeg rewrites its progress line in place.
type lineCollector struct {
	mu      sync.Mutex
	partial []byte
	lines   []string
	onLine  func(string)
}

func (c *lineCollector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range p {
		if b == '\n' || b == '\r' {
			c.flush()
			continue
		}
		c.partial = append(c.partial, b)
	}
	return len(p), nil
}

func (c *lineCollector) flush() {
	if len(c.partial) == 0 {
		return
	}
	line := string(c.partial)
	c.partial = c.partial[:0]
	c.lines = append(c.lines, line)
	if c.onLine != nil {
		c.onLine(line)
	}
}

// Close flushes a trailing line which had no line break.
func (c *lineCollector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flush()
	return nil
}

func (c *lineCollector) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := make([]string, len(c.lines), len(c.lines)+1)
	copy(lines, c.lines)
	if len(c.partial) > 0 {
		lines = append(lines, string(c.partial))
	}
	return lines
}
