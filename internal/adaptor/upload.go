package adaptor

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const uploadField = "file"

var (
	errNoFile       = errors.New("Please upload a file")
	errFileTooLarge = errors.New("File is too large")
)

// openUpload returns the uploaded file from a multipart form capped at maxBytes
func openUpload(w http.ResponseWriter, r *http.Request, maxBytes int64, log *zap.Logger) (multipart.File, *multipart.FileHeader, error) {
	if r.ContentLength > maxBytes {
		return nil, nil, fmt.Errorf("%w, the limit is %s", errFileTooLarge, humanize.Bytes(uint64(maxBytes)))
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w, the limit is %s", errFileTooLarge, humanize.Bytes(uint64(maxBytes)))
		}
		return nil, nil, errNoFile
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, nil, errNoFile
	}

	log.Debug("Upload received",
		zap.String("file", header.Filename),
		zap.String("size", humanize.Bytes(uint64(header.Size))),
	)

	return file, header, nil
}
