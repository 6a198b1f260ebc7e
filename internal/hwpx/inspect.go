package hwpx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// HeaderPath is the packaged resource holding style definitions.
const HeaderPath = "Contents/header.xml"

// StyleCatalog holds the style slot ids a template's header.xml defines.
type StyleCatalog struct {
	Styles  map[int]bool
	ParaPrs map[int]bool
	CharPrs map[int]bool
}

// Defines reports whether every slot of a style profile is defined.
func (c StyleCatalog) Defines(p StyleProfile) bool {
	return c.Styles[p.StyleID] && c.ParaPrs[p.ParaPrID] && c.CharPrs[p.CharPrID]
}

// ParseStyleCatalog stream-decodes header.xml and collects the ids of every
// style, paraPr and charPr definition. Assembly never consults this; it backs
// the inspect diagnostic only.
func ParseStyleCatalog(header []byte) (StyleCatalog, error) {
	catalog := StyleCatalog{
		Styles:  make(map[int]bool),
		ParaPrs: make(map[int]bool),
		CharPrs: make(map[int]bool),
	}

	decoder := xml.NewDecoder(bytes.NewReader(header))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return catalog, fmt.Errorf("header.xml 파싱 실패: %w", err)
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		var target map[int]bool
		switch se.Name.Local {
		case "style":
			target = catalog.Styles
		case "paraPr":
			target = catalog.ParaPrs
		case "charPr":
			target = catalog.CharPrs
		default:
			continue
		}

		for _, attr := range se.Attr {
			if attr.Name.Local != "id" {
				continue
			}
			if id, err := strconv.Atoi(attr.Value); err == nil {
				target[id] = true
			}
		}
	}

	return catalog, nil
}
