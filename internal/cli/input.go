package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/ease/internal/value"
)

// readDocument decodes the document named by path, or stdin when path is
// empty or "-". The format follows the extension; stdin is sniffed.
func readDocument(cmd *cobra.Command, path string) (any, error) {
	var (
		data   []byte
		err    error
		format = value.FormatAuto
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		format = value.FormatFromPath(path)
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read document", err)
	}

	doc, err := value.Decode(data, format)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to decode document", err)
	}
	return doc, nil
}

// optionalArg returns args[i] or "" when absent.
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// parseScalar reads a command-line value as JSON, falling back to the raw
// string: `3` is a number, `"3"` and `3x` are strings.
func parseScalar(s string) any {
	if !json.Valid([]byte(s)) {
		return s
	}
	v, err := value.DecodeJSON([]byte(s))
	if err != nil {
		return s
	}
	return v
}
