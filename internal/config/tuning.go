package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"furrow/internal/domain/farmer"
	"furrow/internal/domain/world"
)

//go:embed tuning.schema.json
var tuningSchemaJSON string

const tuningSchemaURL = "furrow://tuning.schema.json"

var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning overlays the YAML file at path on farmer.DefaultTuning. An empty
// path returns the defaults.
func LoadTuning(path string) (farmer.Tuning, error) {
	t := farmer.DefaultTuning()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	return ParseTuning(raw)
}

func ParseTuning(raw []byte) (farmer.Tuning, error) {
	t := farmer.DefaultTuning()
	if err := validateTuningDoc(raw); err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := checkTuning(t); err != nil {
		return t, err
	}
	return t, nil
}

func validateTuningDoc(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	if doc == nil {
		return nil
	}
	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}

	schema, err := compileTuningSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	return nil
}

func compileTuningSchema() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(tuningSchemaURL, strings.NewReader(tuningSchemaJSON)); err != nil {
		return nil, fmt.Errorf("load tuning schema: %w", err)
	}
	return c.Compile(tuningSchemaURL)
}

// checkTuning covers the cross-field rules a schema cannot express.
func checkTuning(t farmer.Tuning) error {
	w := t.World
	if w.StoneRows >= w.Rows {
		return fmt.Errorf("%w: world.stone_rows %d leaves no soil in %d rows", ErrInvalidTuning, w.StoneRows, w.Rows)
	}
	if w.PondMin > w.PondMax {
		return fmt.Errorf("%w: world.pond_min %d > pond_max %d", ErrInvalidTuning, w.PondMin, w.PondMax)
	}
	if w.StoneRows+1+w.PondMax > w.Rows || w.PondMax+1 > w.Cols {
		return fmt.Errorf("%w: pond does not fit a %dx%d farm", ErrInvalidTuning, w.Rows, w.Cols)
	}
	onFarm := func(c world.Cell) bool {
		return c.Row >= 0 && c.Row < w.Rows && c.Col >= 0 && c.Col < w.Cols
	}
	for _, b := range w.Buildings {
		corner := world.Cell{Row: b.Top.Row + b.Height - 1, Col: b.Top.Col + b.Width - 1}
		if !onFarm(b.Top) || !onFarm(corner) {
			return fmt.Errorf("%w: %s footprint leaves the farm", ErrInvalidTuning, b.Kind)
		}
	}
	if !onFarm(t.Player.Spawn) {
		return fmt.Errorf("%w: player.spawn %+v is off the farm", ErrInvalidTuning, t.Player.Spawn)
	}
	if _, ok := world.ParseDirection(string(t.Player.Facing)); !ok {
		return fmt.Errorf("%w: player.facing %q", ErrInvalidTuning, t.Player.Facing)
	}
	return nil
}
