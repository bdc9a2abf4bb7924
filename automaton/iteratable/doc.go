package iteratable

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pathql.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("pathql.automaton")
}
