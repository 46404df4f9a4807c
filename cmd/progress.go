package cmd

import (
	"io"
	"os"

	"github.com/kozaktomas/facemesh-prep/internal/objmesh"
	"github.com/schollz/progressbar/v3"
)

// inputFile is an opened mesh file, optionally reporting read progress.
type inputFile struct {
	io.Reader
	file *os.File
	bar  *progressbar.ProgressBar
}

// openInput opens a mesh file for reading. Close must be called before
// anything is written to the same path.
func openInput(path, description string) (*inputFile, error) {
	f, err := objmesh.OpenInput(path)
	if err != nil {
		return nil, err
	}

	in := &inputFile{Reader: f, file: f}
	if noProgress {
		return in, nil
	}

	info, err := f.Stat()
	if err != nil {
		// No size, no bar
		return in, nil //nolint:nilerr // progress is optional
	}
	in.bar = newReadProgressBar(info.Size(), description)
	in.Reader = io.TeeReader(f, in.bar)
	return in, nil
}

func (in *inputFile) Close() error {
	if in.bar != nil {
		_ = in.bar.Finish()
	}
	return in.file.Close()
}

func newReadProgressBar(size int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
	)
}
