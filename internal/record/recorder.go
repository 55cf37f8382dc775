// Package record writes rendered frames to disk as a numbered image sequence.
//
// Encoding runs on one background goroutine. The writer assigns each frame
// the next index when it writes it and advances the index only after a
// successful write, so the sequence never skips or repeats a number.
package record

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/iburimskiy/glimmera/internal/logging"
)

// ErrLowDiskSpace is returned by Start when the output volume is nearly full.
var ErrLowDiskSpace = errors.New("not enough free disk space to record")

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("recorder closed")

// WriteError reports a frame that could not be written. Recording halts and
// the index is reused by the next successful write.
type WriteError struct {
	Index int
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write frame %d to %s: %v", e.Index, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Options configure a Recorder.
type Options struct {
	Dir     string
	Name    string
	Encoder Encoder
	// QueueSize bounds the frames waiting for the writer; Capture blocks
	// when it is full.
	QueueSize int
	// MinFreeBytes refuses Start below this much free space. Zero disables
	// the check.
	MinFreeBytes uint64
	// FreeSpace reports free bytes on the volume holding path. Defaults to
	// gopsutil's disk.Usage.
	FreeSpace func(path string) (uint64, error)
}

type frame struct {
	img     *image.RGBA
	session int
}

// Recorder owns the recording state: the on/off flag and the next output
// index.
type Recorder struct {
	opt    Options
	pool   *ImagePool
	frames chan frame
	wg     sync.WaitGroup

	mu        sync.Mutex
	recording bool
	session   int
	failed    int // session that hit a write error; its queued frames are dropped
	next      int
	errs      []error
	closed    bool
}

// New starts the writer goroutine.
func New(opt Options) *Recorder {
	if opt.QueueSize < 1 {
		opt.QueueSize = 1
	}
	if opt.Encoder == nil {
		opt.Encoder, _ = NewEncoder("png")
	}
	if opt.FreeSpace == nil {
		opt.FreeSpace = freeSpace
	}
	r := &Recorder{
		opt:    opt,
		pool:   NewImagePool(),
		frames: make(chan frame, opt.QueueSize),
		failed: -1,
	}
	r.wg.Add(1)
	go r.run()
	return r
}

func freeSpace(path string) (uint64, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return u.Free, nil
}

// Recording reports whether frames are being captured.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Next returns the index the next written frame will get.
func (r *Recorder) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

// Start turns recording on. The index continues from previous sessions.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if r.recording {
		return nil
	}

	if err := os.MkdirAll(r.opt.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if r.opt.MinFreeBytes > 0 {
		free, err := r.opt.FreeSpace(r.opt.Dir)
		if err != nil {
			logging.Logger().Warn("cannot read free disk space", "dir", r.opt.Dir, "err", err)
		} else if free < r.opt.MinFreeBytes {
			return fmt.Errorf("%w: %d MiB free in %s", ErrLowDiskSpace, free>>20, r.opt.Dir)
		}
	}

	r.session++
	r.recording = true
	logging.Logger().Info("recording frames", "dir", r.opt.Dir, "next", r.next)
	return nil
}

// Stop turns recording off. Frames already captured are still written.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}
	r.recording = false
	logging.Logger().Info("recording stopped", "next", r.next)
}

// Toggle flips recording and returns the new state.
func (r *Recorder) Toggle() (bool, error) {
	if r.Recording() {
		r.Stop()
		return false, nil
	}
	if err := r.Start(); err != nil {
		return false, err
	}
	return true, nil
}

// Buffer returns a frame buffer of bounds rect to fill and pass to Capture.
func (r *Recorder) Buffer(rect image.Rectangle) *image.RGBA {
	return r.pool.Get(rect)
}

// Capture queues img for writing if recording is on. The recorder takes
// ownership of img either way. Capture blocks while the queue is full.
func (r *Recorder) Capture(img *image.RGBA) bool {
	r.mu.Lock()
	if !r.recording || r.closed {
		r.mu.Unlock()
		r.pool.Put(img)
		return false
	}
	session := r.session
	r.mu.Unlock()

	r.frames <- frame{img: img, session: session}
	return true
}

// Errors returns and clears the write errors reported since the last call.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	errs := r.errs
	r.errs = nil
	return errs
}

// Close stops recording, writes the queued frames and stops the writer.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.recording = false
	r.mu.Unlock()

	close(r.frames)
	r.wg.Wait()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for f := range r.frames {
		r.write(f)
		r.pool.Put(f.img)
	}
}

func (r *Recorder) write(f frame) {
	r.mu.Lock()
	if f.session == r.failed {
		r.mu.Unlock()
		return
	}
	index := r.next
	r.mu.Unlock()

	path := filepath.Join(r.opt.Dir, FileName(r.opt.Name, index, r.opt.Encoder.Ext()))
	if err := r.writeFile(path, f.img); err != nil {
		werr := &WriteError{Index: index, Path: path, Err: err}
		logging.Logger().Error("frame write failed, recording halted", "err", werr)

		r.mu.Lock()
		r.failed = f.session
		if r.session == f.session {
			r.recording = false
		}
		r.errs = append(r.errs, werr)
		r.mu.Unlock()
		return
	}

	r.mu.Lock()
	r.next = index + 1
	r.mu.Unlock()
	logging.Logger().Debug("saved frame", "index", index, "path", path)
}

func (r *Recorder) writeFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.opt.Encoder.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
