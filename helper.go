package eventlog

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// buildErrorChain walks an append failure from the outermost wrapper to the OS
// error underneath and returns:
//   - chain: outermost -> innermost messages
//   - ops: operation names of DetailedError links ("" for plain errors)
//   - root: the innermost message, usually the *fs.PathError text
//
// DetailedError.Cause() is followed first, then stdlib errors.Unwrap. Depth and
// repeated messages are bounded to survive cycles.
func buildErrorChain(err error) (chain []string, ops []string, root string) {
	const maxDepth = 50
	seen := map[string]bool{}

	for depth := 0; err != nil && depth < maxDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, emptyString)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// reportFailure emits one diagnostic event for a failed append. An empty path
// is left out of the event.
func reportFailure(logger *zerolog.Logger, err error, d LogDistinction, path string) {
	if logger == nil || err == nil {
		return
	}
	chain, ops, root := buildErrorChain(err)
	event := logger.Error().Err(err).Str("distinction", d.String())
	if path != emptyString {
		event = event.Str("path", path)
	}
	event.Strs("error_chain", chain).
		Strs("error_ops", ops).
		Str("error_root", root).
		Str("error_history", joinChain(chain)).
		Msg("event log append failed")
}
