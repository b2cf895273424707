// Package fetch downloads the media payloads referenced by a normalized
// export, one at a time.
//
// Some export downloads arrive ZIP-wrapped with the real media stored as a
// "-main." entry next to overlay layers; those are detected and unwrapped
// in memory before the payload is written to disk. Failures of any kind
// skip the item and the batch continues.
package fetch
