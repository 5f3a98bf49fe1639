package markdown

import "strings"

// Block is a generated region of a note delimited by html comment markers.
type Block struct {
	Name string
}

func (b Block) start() string { return "<!-- " + b.Name + ":start -->" }
func (b Block) end() string   { return "<!-- " + b.Name + ":end -->" }

// Replace swaps the block contents in body, appending the block when absent.
func (b Block) Replace(body, generated string) string {
	startMarker, endMarker := b.start(), b.end()
	block := startMarker + "\n" + strings.TrimRight(generated, "\n") + "\n" + endMarker

	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	if start >= 0 && end > start {
		return body[:start] + block + body[end+len(endMarker):]
	}
	if strings.TrimSpace(body) == "" {
		return block + "\n"
	}
	return strings.TrimRight(body, "\n") + "\n\n" + block + "\n"
}

// Contents returns the text between the block markers, if present.
func (b Block) Contents(body string) (string, bool) {
	start := strings.Index(body, b.start())
	end := strings.Index(body, b.end())
	if start < 0 || end < start {
		return "", false
	}
	return strings.Trim(body[start+len(b.start()):end], "\n"), true
}
