package result

import (
	"encoding/json"
	"fmt"
)

// Tagged values are encoded the way the simulator writes them: a single-key
// object naming the variant ({"Absolute": 120}), or a bare string for
// variants without data ("Terrain").

func decodeTagged(data []byte) (tag string, body json.RawMessage, err error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return name, nil, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("expected exactly one variant, got %d", len(obj))
	}
	for k, v := range obj {
		tag, body = k, v
	}
	return tag, body, nil
}

func encodeTagged(tag string, body interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{tag: body})
}

// MarshalJSON implements json.Marshaler.
func (a Altitude) MarshalJSON() ([]byte, error) {
	return encodeTagged(a.Kind.String(), a.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Altitude) UnmarshalJSON(data []byte) error {
	tag, body, err := decodeTagged(data)
	if err != nil {
		return fmt.Errorf("altitude: %w", err)
	}
	switch tag {
	case "Absolute":
		a.Kind = AltitudeAbsolute
	case "Relative":
		a.Kind = AltitudeRelative
	default:
		return fmt.Errorf("altitude: unknown variant %q", tag)
	}
	return json.Unmarshal(body, &a.Value)
}

// MarshalJSON implements json.Marshaler.
func (c ColorSource) MarshalJSON() ([]byte, error) {
	if c.Kind == ColorTerrain {
		return json.Marshal("Terrain")
	}
	return encodeTagged("Rgb", c.RGBA)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ColorSource) UnmarshalJSON(data []byte) error {
	tag, body, err := decodeTagged(data)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	switch tag {
	case "Terrain":
		*c = TerrainColor()
		return nil
	case "Rgb":
		c.Kind = ColorRGBA
		return json.Unmarshal(body, &c.RGBA)
	default:
		return fmt.Errorf("color: unknown variant %q", tag)
	}
}

type tickSingle struct {
	Azimuth  float64 `json:"azimuth"`
	Size     int     `json:"size"`
	Labelled bool    `json:"labelled"`
}

type tickMultiple struct {
	Bias     float64 `json:"bias"`
	Step     float64 `json:"step"`
	Size     int     `json:"size"`
	Labelled bool    `json:"labelled"`
}

// MarshalJSON implements json.Marshaler.
func (t Tick) MarshalJSON() ([]byte, error) {
	if t.Kind == TickMultiple {
		return encodeTagged("Multiple", tickMultiple{Bias: t.Bias, Step: t.Step, Size: t.Size, Labelled: t.Labelled})
	}
	return encodeTagged("Single", tickSingle{Azimuth: t.Azimuth, Size: t.Size, Labelled: t.Labelled})
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tick) UnmarshalJSON(data []byte) error {
	tag, body, err := decodeTagged(data)
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	switch tag {
	case "Single":
		var s tickSingle
		if err := json.Unmarshal(body, &s); err != nil {
			return err
		}
		*t = Tick{Kind: TickSingle, Azimuth: s.Azimuth, Size: s.Size, Labelled: s.Labelled}
	case "Multiple":
		var m tickMultiple
		if err := json.Unmarshal(body, &m); err != nil {
			return err
		}
		*t = Tick{Kind: TickMultiple, Bias: m.Bias, Step: m.Step, Size: m.Size, Labelled: m.Labelled}
	default:
		return fmt.Errorf("tick: unknown variant %q", tag)
	}
	return nil
}

type viewJSON struct {
	Position    Position        `json:"position"`
	Frame       Frame           `json:"frame"`
	Coloring    json.RawMessage `json:"coloring"`
	FogDistance *float64        `json:"fog_distance"`
}

// MarshalJSON implements json.Marshaler.
func (v View) MarshalJSON() ([]byte, error) {
	var coloring []byte
	var err error
	switch c := v.Coloring.(type) {
	case SimpleColoring:
		coloring, err = encodeTagged("Simple", c)
	case ShadingColoring:
		coloring, err = encodeTagged("Shading", c)
	case nil:
		coloring = []byte("null")
	default:
		return nil, fmt.Errorf("view: unsupported coloring %T", v.Coloring)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(viewJSON{
		Position:    v.Position,
		Frame:       v.Frame,
		Coloring:    coloring,
		FogDistance: v.FogDistance,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *View) UnmarshalJSON(data []byte) error {
	var raw viewJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Position = raw.Position
	v.Frame = raw.Frame
	v.FogDistance = raw.FogDistance
	v.Coloring = nil

	if len(raw.Coloring) == 0 || string(raw.Coloring) == "null" {
		return nil
	}
	tag, body, err := decodeTagged(raw.Coloring)
	if err != nil {
		return fmt.Errorf("coloring: %w", err)
	}
	switch tag {
	case "Simple":
		var c SimpleColoring
		if err := json.Unmarshal(body, &c); err != nil {
			return fmt.Errorf("coloring: %w", err)
		}
		v.Coloring = c
	case "Shading":
		var c ShadingColoring
		if err := json.Unmarshal(body, &c); err != nil {
			return fmt.Errorf("coloring: %w", err)
		}
		v.Coloring = c
	default:
		return fmt.Errorf("coloring: unknown variant %q", tag)
	}
	return nil
}
