// Package ratelimit provides pacing for the sequential download loop.
//
// The export servers are slow but tolerant; the pacer is a courtesy
// mechanism, not a correctness one. It pauses briefly after every N
// completed downloads so long batches do not hammer the host.
package ratelimit
