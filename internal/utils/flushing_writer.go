package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter serializes writes and flushes buffered writers after every write
// so progress lines appear while git is still running.
type FlushingWriter struct {
	writer io.Writer
	mutex  sync.Mutex
}

// NewFlushingWriter wraps the provided writer; wrapping an existing FlushingWriter returns it unchanged.
func NewFlushingWriter(writer io.Writer) io.Writer {
	if writer == nil {
		return io.Discard
	}
	if _, alreadyWrapped := writer.(*FlushingWriter); alreadyWrapped {
		return writer
	}
	return &FlushingWriter{writer: writer}
}

// Write delegates to the underlying writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	flushingWriter.mutex.Lock()
	defer flushingWriter.mutex.Unlock()

	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if bufferedWriter, supportsFlush := flushingWriter.writer.(flusher); supportsFlush {
		if flushError := bufferedWriter.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}
