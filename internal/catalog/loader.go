package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog override from a YAML file. The file uses the
// same shape as the built-in catalog:
//
//	name: my-catalog
//	categories:
//	  - name: battery_charging
//	    subcategories:
//	      - state_of_charge
//	      - charging_status
//
// Category order in the file is preserved. The loaded catalog is
// validated before being returned.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return c, nil
}
