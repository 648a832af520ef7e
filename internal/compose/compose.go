// Package compose has read-only helpers over the project's compose file.
// They feed log output on the container targets; docker compose itself
// remains the source of truth for any failure.
package compose

import (
	"fmt"
	"os"
	"sort"

	"github.com/compose-spec/compose-go/v2/loader"
	composeTypes "github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v2"
)

// ServiceNames returns the names under the services section, sorted.
func ServiceNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read compose file: %w", err)
	}

	var compose map[string]interface{}
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return nil, fmt.Errorf("could not parse compose file: %w", err)
	}

	services, ok := compose["services"].(map[interface{}]interface{})
	if !ok {
		return nil, fmt.Errorf("services section not found in %s", path)
	}

	names := make([]string, 0, len(services))
	for name := range services {
		s, ok := name.(string)
		if !ok {
			return nil, fmt.Errorf("non-string service name in %s", path)
		}
		names = append(names, s)
	}
	sort.Strings(names)
	return names, nil
}

// Validate loads the compose file through the compose-go loader so a
// malformed file is reported before docker compose is invoked.
func Validate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read compose file: %w", err)
	}

	_, err = loader.Load(composeTypes.ConfigDetails{
		ConfigFiles: []composeTypes.ConfigFile{{Content: data}},
	}, func(o *loader.Options) {
		name, imperative := o.GetProjectName()
		if name == "" {
			o.SetProjectName("delivery-backend", imperative)
		}
	})
	if err != nil {
		return fmt.Errorf("error loading compose file: %w", err)
	}
	return nil
}
