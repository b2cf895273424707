// Package storage handles the on-disk layout of a gallery build: the
// media/ subdirectory of downloaded files and the gallery HTML page next
// to it. Writes go through a temp-file-then-rename step so interrupted
// runs never leave truncated files.
package storage
