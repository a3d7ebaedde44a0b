package scene

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a scene file from disk and validates it.
func ParseFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeerrors.NewSceneError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates scene data. path is only used in errors.
// Unknown keys are rejected.
func Parse(path string, data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, themeerrors.NewSceneError(path, extractLine(err), err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
