package formats

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Component payload errors.
var (
	ErrInvalidPayload = errors.New("invalid EasyEDA payload")
	ErrNoOrigin       = errors.New("component header has no origin")
	ErrNoComponents   = errors.New("product lists no components")
)

// DefaultName is used when the payload carries no usable title.
const DefaultName = "NoName"

// Number decodes a JSON value that EasyEDA sends either as a number or as a
// numeric string.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("%w: bad number %q", ErrInvalidPayload, data)
	}
	*n = Number(v)
	return nil
}

// Header holds the component-level values of a footprint payload.
type Header struct {
	Title     string  // Raw title as published
	Datasheet string  // Datasheet link, "" when absent
	OriginX   float64 // Declared origin, canvas units
	OriginY   float64
}

// Component is a decoded footprint payload.
type Component struct {
	UUID   string
	Header Header
	Shape  []string // Raw shape record lines
}

type componentPayload struct {
	Success *bool `json:"success"`
	Result  struct {
		UUID    string `json:"uuid"`
		Title   string `json:"title"`
		DataStr struct {
			Head struct {
				X     *Number `json:"x"`
				Y     *Number `json:"y"`
				CPara struct {
					Link string `json:"link"`
				} `json:"c_para"`
			} `json:"head"`
			Shape []string `json:"shape"`
		} `json:"dataStr"`
	} `json:"result"`
}

// ParseComponent decodes a component payload. A missing origin is a
// structural error; a missing datasheet or title is not.
func ParseComponent(data []byte) (*Component, error) {
	var p componentPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.Success != nil && !*p.Success {
		return nil, fmt.Errorf("%w: request was not successful", ErrInvalidPayload)
	}

	head := p.Result.DataStr.Head
	if head.X == nil || head.Y == nil {
		return nil, ErrNoOrigin
	}

	return &Component{
		UUID: p.Result.UUID,
		Header: Header{
			Title:     p.Result.Title,
			Datasheet: head.CPara.Link,
			OriginX:   float64(*head.X),
			OriginY:   float64(*head.Y),
		},
		Shape: p.Result.DataStr.Shape,
	}, nil
}

// FootprintName turns a title into a file-safe footprint name.
//
// The literal mode replaces spaces, slashes and opening parentheses only;
// closing parentheses survive ("Resistor (0805)" -> "Resistor__0805)"). This
// matches existing libraries generated from the same data. fixParens also
// replaces ")" and collapses runs of underscores ("Resistor_0805").
func FootprintName(title string, fixParens bool) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "(", "_")
	name := r.Replace(title)
	if fixParens {
		name = strings.ReplaceAll(name, ")", "_")
		for strings.Contains(name, "__") {
			name = strings.ReplaceAll(name, "__", "_")
		}
		name = strings.Trim(name, "_")
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// Product lists the component uuids published for one part number.
type Product struct {
	Footprint string   // Footprint component uuid
	Symbols   []string // Symbol component uuids
}

type productPayload struct {
	Success bool `json:"success"`
	Result  []struct {
		ComponentUUID string `json:"component_uuid"`
	} `json:"result"`
}

// ParseProduct decodes a product listing. The last entry is the footprint,
// every other entry is a symbol part.
func ParseProduct(data []byte) (*Product, error) {
	var p productPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !p.Success || len(p.Result) == 0 {
		return nil, ErrNoComponents
	}

	last := len(p.Result) - 1
	prod := &Product{Footprint: p.Result[last].ComponentUUID}
	for _, r := range p.Result[:last] {
		prod.Symbols = append(prod.Symbols, r.ComponentUUID)
	}
	return prod, nil
}
