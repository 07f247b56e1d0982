package minisoft

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Marshal serializes r with encoding/json struct tags, matching the
// CompilationResult shape.
func (r *CompilationResult) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// PatchProgressLog splices a verbose-mode progress log onto an
// already-serialized CompilationResult without re-marshaling the whole
// document: a surgical JSON edit instead of a full round-trip
// decode/encode. It is the only place sjson is used: everywhere else the
// typed struct is the source of truth.
func PatchProgressLog(data []byte, log []string) ([]byte, error) {
	out := data
	for i, line := range log {
		var err error
		out, err = sjson.SetBytes(out, fmt.Sprintf("progress_log.%d", i), line)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ProgressLog reads back the progress_log field patched on by
// PatchProgressLog, using gjson for a read that never touches the rest
// of the document's structure.
func ProgressLog(data []byte) []string {
	result := gjson.GetBytes(data, "progress_log")
	if !result.Exists() {
		return nil
	}
	lines := make([]string, 0, len(result.Array()))
	for _, v := range result.Array() {
		lines = append(lines, v.String())
	}
	return lines
}

// ErrorCount reads back the total diagnostic count from a serialized
// CompilationResult via gjson, without unmarshaling into the typed
// struct — used by the CLI to decide process exit status cheaply.
func ErrorCount(data []byte) int {
	if !gjson.GetBytes(data, "errors").Exists() {
		return 0
	}
	count := 0
	count += int(gjson.GetBytes(data, "errors.lexical.#").Int())
	if gjson.GetBytes(data, "errors.syntax").Exists() {
		count++
	}
	count += int(gjson.GetBytes(data, "errors.semantic.#").Int())
	return count
}

// CompileVerbose runs e.Compile with a CollectingReporter and returns the
// serialized result with its progress log spliced in via PatchProgressLog.
func (e *Engine) CompileVerbose(source string) ([]byte, error) {
	reporter := &CollectingReporter{}
	result, err := e.compileWith(source, reporter)
	if err != nil {
		return nil, err
	}
	data, err := result.Marshal()
	if err != nil {
		return nil, err
	}
	return PatchProgressLog(data, reporter.Lines)
}
