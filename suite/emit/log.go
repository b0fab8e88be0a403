package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// LogSink implements Sink by writing events to a writer.
//
// Two output modes:
//   - Text mode (default): one human-readable line per event, with the
//     event name colored by outcome (pass green, fail red, skipped yellow).
//   - JSON mode: one JSON object per line (JSONL), machine-readable.
//
// Example text output:
//
//	[start] node=auth/login
//	[fail] node=auth/login err="Timeout expired [150]"
//
// Example JSON output:
//
//	{"event":"start","node":"auth/login"}
//	{"event":"pass","node":"auth/login","args":[42]}
type LogSink struct {
	mu       sync.Mutex
	writer   io.Writer
	jsonMode bool
}

// NewLogSink creates a LogSink writing to w (os.Stdout when w is nil).
// If jsonMode is true, events are written as JSONL instead of text.
func NewLogSink(w io.Writer, jsonMode bool) *LogSink {
	if w == nil {
		w = os.Stdout
	}
	return &LogSink{writer: w, jsonMode: jsonMode}
}

// Emit writes one line for the event in the configured mode.
func (l *LogSink) Emit(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.jsonMode {
		l.emitJSON(event)
		return
	}
	l.emitText(event)
}

func (l *LogSink) emitJSON(event Event) {
	data, err := json.Marshal(struct {
		Event string `json:"event"`
		Node  string `json:"node"`
		Args  []any  `json:"args,omitempty"`
	}{
		Event: event.Name,
		Node:  event.Origin,
		Args:  jsonArgs(event.Args),
	})
	if err != nil {
		fmt.Fprintf(l.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Fprintf(l.writer, "%s\n", data)
}

func (l *LogSink) emitText(event Event) {
	fmt.Fprintf(l.writer, "[%s] node=%s", colorize(event.Name), event.Origin)
	for _, a := range event.Args {
		if err, ok := a.(error); ok {
			fmt.Fprintf(l.writer, " err=%q", err.Error())
			continue
		}
		fmt.Fprintf(l.writer, " arg=%v", a)
	}
	fmt.Fprint(l.writer, "\n")
}

// jsonArgs replaces non-marshalable args with their string form so a single
// odd payload value cannot drop the whole line.
func jsonArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		if err, ok := a.(error); ok {
			out[i] = err.Error()
			continue
		}
		if _, err := json.Marshal(a); err != nil {
			out[i] = fmt.Sprintf("%v", a)
			continue
		}
		out[i] = a
	}
	return out
}

func colorize(name string) string {
	switch name {
	case "pass":
		return color.GreenString(name)
	case "fail":
		return color.RedString(name)
	case "skipped":
		return color.YellowString(name)
	case "ignored", "todo":
		return color.CyanString(name)
	default:
		return name
	}
}
