package exec

import (
	"bytes"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PrefixWriter adds a styled prefix to each line of output. Incomplete
// lines are held back until their newline arrives or Flush is called.
type PrefixWriter struct {
	mu     sync.Mutex
	prefix string
	style  lipgloss.Style
	writer io.Writer
	buffer []byte
}

// NewPrefixWriter creates a writer that prefixes each line
func NewPrefixWriter(writer io.Writer, prefix string, style lipgloss.Style) *PrefixWriter {
	return &PrefixWriter{
		prefix: prefix,
		style:  style,
		writer: writer,
	}
}

// Write adds prefix to each complete line and forwards them in one write.
func (p *PrefixWriter) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buffer = append(p.buffer, data...)

	var out bytes.Buffer
	for {
		i := bytes.IndexByte(p.buffer, '\n')
		if i < 0 {
			break
		}
		out.WriteString(p.formatLine(string(bytes.TrimSuffix(p.buffer[:i], []byte("\r")))))
		out.WriteByte('\n')
		p.buffer = p.buffer[i+1:]
	}
	p.buffer = append([]byte(nil), p.buffer...)

	if out.Len() > 0 {
		if _, err := p.writer.Write(out.Bytes()); err != nil {
			return 0, err
		}
	}
	return len(data), nil
}

// Flush writes any remaining buffered content as a final line
func (p *PrefixWriter) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buffer) == 0 {
		return nil
	}
	line := p.formatLine(string(p.buffer)) + "\n"
	p.buffer = p.buffer[:0]
	_, err := io.WriteString(p.writer, line)
	return err
}

func (p *PrefixWriter) formatLine(line string) string {
	return p.style.Render(p.prefix + line)
}
