/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package writer

import (
	"bufio"
	"context"
	"io"

	"go.uber.org/zap"
)

// lineTerminator ends every written line.
const lineTerminator = "\n"

// WriteTo emits the graph and writes the lines to out. Nothing is written
// unless emission succeeds as a whole. It returns the number of bytes
// written.
func (w *Writer) WriteTo(ctx context.Context, out io.Writer) (int64, error) {
	lines, err := w.Emit(ctx)
	if err != nil {
		return 0, err
	}
	s := &lineSink{
		out:      bufio.NewWriter(out),
		observer: &w.file,
		throttle: throttle{rate: w.opts.FileNotificationRate},
	}
	n, err := s.writeLines(lines)
	if err != nil {
		w.logger.Warn("writing lines failed", zap.Int("written", s.written), zap.Error(err))
		return n, err
	}
	w.logger.Debug("lines written", zap.Int("lines", s.written), zap.Int64("bytes", n))
	return n, nil
}

// lineSink writes terminated lines and reports file progress.
type lineSink struct {
	out      *bufio.Writer
	observer *Registry[FileProgress]
	throttle throttle
	written  int
}

func (s *lineSink) writeLines(lines []string) (int64, error) {
	var total int64
	for _, ln := range lines {
		n, err := s.out.WriteString(ln)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = s.out.WriteString(lineTerminator)
		total += int64(n)
		if err != nil {
			return total, err
		}
		s.written++
		if s.throttle.due(s.written) {
			s.observer.Notify(FileProgress{LinesWritten: s.written})
		}
	}
	if err := s.out.Flush(); err != nil {
		return total, err
	}
	s.observer.Notify(FileProgress{LinesWritten: s.written, Complete: true})
	return total, nil
}
