package imgio

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/dpiscale/internal/consts"
	"github.com/srlehn/dpiscale/internal/errors"
)

type Encoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}

var _ Encoder = (*MultiEncoder)(nil)

// MultiEncoder writes bmp, gif, jpeg, png and tiff.
type MultiEncoder struct{}

func (e *MultiEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.New(consts.ErrNilParam)
	}
	fmtStr := Format(fileExt)
	if len(fmtStr) == 0 {
		return errors.New(`no file format specified`)
	}
	var err error
	switch fmtStr {
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `png`:
		err = png.Encode(w, img)
	case `tif`, `tiff`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case `jpg`, `jpeg`:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	default:
		err = errors.New(`unsupported file format: "` + fmtStr + `"`)
	}
	if err != nil {
		return errors.New(err)
	}
	return nil
}

// Format returns the lower case extension of a file name or extension.
func Format(fileExt string) string {
	// allow passing whole filename
	fileExtParts := strings.Split(fileExt, `.`)
	fileExt = fileExtParts[len(fileExtParts)-1]
	return strings.ToLower(fileExt)
}

// Save encodes img in the format given by the extension of path.
func Save(path string, img image.Image) (err error) {
	if len(Format(filepath.Base(path))) == 0 || !strings.Contains(filepath.Base(path), `.`) {
		return errors.Errorf(`no file extension in %q`, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := f.Close(); errClose != nil && err == nil {
			err = errors.New(errClose)
		}
	}()
	return (&MultiEncoder{}).Encode(f, img, path)
}
