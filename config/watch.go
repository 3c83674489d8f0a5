/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	liberr "github.com/sabouaram/distfs/errors"
)

// Watcher reloads a Config from its source file whenever the file
// changes, handing the freshly validated Config to onChange. A reload
// that fails to parse or validate is logged and skipped: the previous,
// still-valid Config stays in effect until a subsequent write succeeds.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
	log  *logrus.Entry
	done chan struct{}
}

// Watch starts watching path's directory (editors commonly replace the
// file rather than write in place, which only a directory watch catches)
// and calls onChange with each successfully reloaded Config. A nil log
// is valid; logging is then skipped. Call Close to stop watching.
func Watch(path string, onChange func(*Config), log *logrus.Entry) (*Watcher, liberr.Error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ErrorFileRead.Errorf("%s: %s", path, err.Error())
	}

	if aErr := w.Add(filepath.Dir(path)); aErr != nil {
		_ = w.Close()
		return nil, ErrorFileRead.Errorf("%s: %s", path, aErr.Error())
	}

	watcher := &Watcher{path: path, w: w, log: log, done: make(chan struct{})}

	go watcher.run(onChange)

	return watcher, nil
}

func (w *Watcher) run(onChange func(*Config)) {
	target := filepath.Clean(w.path)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			cfg, cErr := LoadFile(w.path)
			if cErr != nil {
				w.logErr(cErr)
				continue
			}
			onChange(cfg)

		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.logErr(ErrorFileRead.Errorf("%s: %s", w.path, err.Error()))
		}
	}
}

func (w *Watcher) logErr(err liberr.Error) {
	if w.log == nil {
		return
	}
	w.log.WithError(err).Warn("config reload failed, keeping previous configuration")
}

// Close stops the watch.
func (w *Watcher) Close() liberr.Error {
	close(w.done)
	if err := w.w.Close(); err != nil {
		return ErrorFileRead.Errorf("%s: %s", w.path, err.Error())
	}
	return nil
}
