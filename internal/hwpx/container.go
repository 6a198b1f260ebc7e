package hwpx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// SectionPath is the packaged resource holding the document body text.
// Only this entry is rewritten during assembly.
const SectionPath = "Contents/section0.xml"

// Container is an in-memory HWPX package: an ordered mapping from resource
// path to byte payload. Entry order from the source zip is preserved on
// re-serialization.
type Container struct {
	paths []string
	files map[string][]byte
}

// OpenContainer unpacks an HWPX zip package fully into memory.
func OpenContainer(data []byte) (*Container, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("템플릿 압축 해제 실패: %w", err)
	}

	c := &Container{files: make(map[string][]byte, len(zr.File))}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("리소스를 열 수 없습니다 %s: %w", f.Name, err)
		}
		payload, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("리소스를 읽을 수 없습니다 %s: %w", f.Name, err)
		}
		if _, exists := c.files[f.Name]; !exists {
			c.paths = append(c.paths, f.Name)
		}
		c.files[f.Name] = payload
	}
	return c, nil
}

// Paths returns the resource paths in package order.
func (c *Container) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Read returns the payload of a resource.
func (c *Container) Read(path string) ([]byte, bool) {
	data, ok := c.files[path]
	return data, ok
}

// Replace swaps the payload of an existing resource. New paths are never
// introduced; the output path set must equal the input set.
func (c *Container) Replace(path string, data []byte) bool {
	if _, ok := c.files[path]; !ok {
		return false
	}
	c.files[path] = data
	return true
}

// Bytes serializes the package back to zip form. The mimetype entry is
// stored uncompressed so consuming applications can sniff it; everything
// else is deflated.
func (c *Container) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, path := range c.paths {
		header := &zip.FileHeader{Name: path, Method: zip.Deflate}
		if path == "mimetype" {
			header.Method = zip.Store
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("리소스 기록 실패 %s: %w", path, err)
		}
		if _, err := w.Write(c.files[path]); err != nil {
			zw.Close()
			return nil, fmt.Errorf("리소스 기록 실패 %s: %w", path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("패키지 직렬화 실패: %w", err)
	}
	return buf.Bytes(), nil
}
