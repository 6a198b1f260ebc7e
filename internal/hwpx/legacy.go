package hwpx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/richardlehane/mscfb"
)

// Format represents the detected template file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatHWPX
	FormatHWP // HWP 5.x binary format
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatHWPX:
		return "hwpx"
	case FormatHWP:
		return "hwp"
	default:
		return "unknown"
	}
}

// DetectFormat detects the template format from magic bytes.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}

	// ZIP magic number (HWPX)
	if data[0] == 'P' && data[1] == 'K' {
		return FormatHWPX
	}

	// OLE/CFBF magic number (HWP 5.x)
	if data[0] == 0xD0 && data[1] == 0xCF && data[2] == 0x11 && data[3] == 0xE0 {
		return FormatHWP
	}

	// HWP Document File signature
	if bytes.HasPrefix(data, []byte("HWP")) {
		return FormatHWP
	}

	return FormatUnknown
}

const legacySignature = "HWP Document File"

// legacyVersion opens an HWP 5.x OLE2 compound file and reads its
// FileHeader stream to report the format version. Used only to produce a
// helpful rejection message for legacy template uploads.
func legacyVersion(data []byte) (string, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("OLE2 문서 파싱 실패: %w", err)
	}

	for _, entry := range doc.File {
		if entry.Name != "FileHeader" {
			continue
		}
		raw, err := io.ReadAll(entry)
		if err != nil {
			return "", fmt.Errorf("FileHeader 스트림을 읽을 수 없습니다: %w", err)
		}
		if len(raw) < 40 {
			return "", fmt.Errorf("FileHeader 스트림이 너무 짧습니다: %d bytes", len(raw))
		}

		sig := string(bytes.TrimRight(raw[:32], "\x00"))
		if sig != legacySignature {
			return "", fmt.Errorf("알 수 없는 시그니처: %q", sig)
		}

		// 버전 4바이트, little-endian: [Revision][Build][Minor][Major]
		return fmt.Sprintf("%d.%d.%d.%d", raw[35], raw[34], raw[33], raw[32]), nil
	}

	return "", fmt.Errorf("FileHeader 스트림을 찾을 수 없습니다")
}
