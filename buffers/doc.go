// Package buffers holds the owned, growable collections that buffering sequence
// adapters keep inside their closures: a sliding [Ring], an append-only replay [Log]
// and a [Seen] key set.
//
// None of the types are safe for concurrent use.
package buffers
