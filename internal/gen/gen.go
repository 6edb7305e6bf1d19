// Package gen holds the batch drivers that walk the static catalog and write
// the generated asset files, one pipeline per entry point.
package gen

import (
	"io"
	"time"
)

// Options controls driver behaviour common to all pipelines.
type Options struct {
	Out     io.Writer // progress output; nil silences it
	Verbose bool
}

// Result contains statistics about a completed generation run.
type Result struct {
	FilesWritten int
	Duration     time.Duration
	OutputSize   int64
}
