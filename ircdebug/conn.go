// Package ircdebug wraps a connection to log every line read from or
// written to it, adapted from the teacher's io.TeeReader/io.MultiWriter
// wrapper to log through a *logrus.Logger instead of a raw io.Writer, so
// wire traces carry structured fields (direction) rather than a string
// prefix.
package ircdebug

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WriteTo returns a new io.ReadWriteCloser that logs every read/write for
// rwc through log at Debug level before returning it to the caller
// unmodified. Useful while developing against a real Twitch connection.
func WriteTo(log *logrus.Logger, rwc io.ReadWriteCloser) io.ReadWriteCloser {
	return &debugConn{
		ReadWriteCloser: rwc,
		r:               io.TeeReader(rwc, &logWriter{log: log, direction: "in"}),
		w:               io.MultiWriter(rwc, &logWriter{log: log, direction: "out"}),
	}
}

type debugConn struct {
	io.ReadWriteCloser
	r io.Reader
	w io.Writer
}

func (dc *debugConn) Read(p []byte) (int, error) {
	return dc.r.Read(p)
}

func (dc *debugConn) Write(p []byte) (int, error) {
	return dc.w.Write(p)
}

// logWriter adapts a *logrus.Logger to io.Writer, logging each chunk as a
// single Debug entry tagged with its direction. Used only via MultiWriter/
// TeeReader above, so it must report the full byte count even though
// logging itself can't fail.
type logWriter struct {
	log       *logrus.Logger
	direction string
}

func (lw *logWriter) Write(p []byte) (int, error) {
	lw.log.WithField("direction", lw.direction).Debug(string(p))
	return len(p), nil
}
