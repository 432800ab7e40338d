package bootstrap

import (
	"io"
	"log/slog"
)

// Shutdown closes the store and then the log output.
// Errors are logged but do not stop the sequence.
func Shutdown(repos *Repositories, logOutput io.Closer) {
	if repos != nil {
		slog.Debug(LogMsgClosingStore)
		if err := repos.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	// log output goes last so the messages above still land
	if logOutput != nil {
		if err := logOutput.Close(); err != nil {
			slog.Error(LogMsgLogFileCloseFailed, "error", err)
		}
	}
}
