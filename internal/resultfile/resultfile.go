// Package resultfile reads and writes panorama result files: a JSON document
// holding the run parameters and the sample grid, normally gzip-compressed.
package resultfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"panorama-reader/internal/result"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
)

// Extension is the conventional extension of compressed result files.
const Extension = ".pano"

var gzipMagic = []byte{0x1f, 0x8b}

// Read decodes a result document from r. Gzip compression is detected from
// the stream header; plain JSON is accepted as well. The decoded data is
// validated before it is returned.
func Read(r io.Reader) (*result.Data, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var src io.Reader = br
	if bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var data result.Data
	if err := json.NewDecoder(src).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid result: %w", err)
	}
	return &data, nil
}

// Load reads and validates the result file at path.
func Load(path string) (*result.Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open result: %w", err)
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil {
		log.Printf("Load: reading %s (%s)", filepath.Base(path), humanize.Bytes(uint64(info.Size())))
	}

	data, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Load: %dx%d panorama, direction %.1f deg, fov %.1f deg",
		data.Width(), data.Height(), data.Params.View.Frame.Direction, data.Params.View.Frame.FOV)
	return data, nil
}

// Write encodes data to w, gzip-compressed when compress is set.
func Write(w io.Writer, data *result.Data, compress bool) error {
	if !compress {
		return json.NewEncoder(w).Encode(data)
	}
	zw := gzip.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(data); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return zw.Close()
}

// Save writes data to path. Files ending in .json are written uncompressed;
// anything else is gzip-compressed.
func Save(path string, data *result.Data) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}
	compress := !strings.EqualFold(filepath.Ext(path), ".json")
	if err := Write(file, data, compress); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
