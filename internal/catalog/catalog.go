// Package catalog defines the category and subcategory labels used to
// request telemetry generation.
package catalog

import "fmt"

// Category groups related telemetry signals under one label.
type Category struct {
	Name          string   `yaml:"name"`
	Subcategories []string `yaml:"subcategories"`
}

// Catalog is an ordered set of categories. Order is significant:
// sample allocation and sample-id assignment follow catalog order, so
// the catalog is a slice rather than a map. Callers must treat a
// loaded catalog as read-only.
type Catalog struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Categories  []Category `yaml:"categories"`
}

// Pair is one (category, subcategory) label combination.
type Pair struct {
	Category    string
	Subcategory string
}

// Validate checks the catalog invariants: category names unique within
// the catalog, subcategory names unique within their category, and no
// empty names.
func (c Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog %q has no categories", c.Name)
	}

	seenCategories := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("catalog %q contains a category with an empty name", c.Name)
		}
		if seenCategories[cat.Name] {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seenCategories[cat.Name] = true

		if len(cat.Subcategories) == 0 {
			return fmt.Errorf("category %q has no subcategories", cat.Name)
		}
		seenSubs := make(map[string]bool)
		for _, sub := range cat.Subcategories {
			if sub == "" {
				return fmt.Errorf("category %q contains an empty subcategory name", cat.Name)
			}
			if seenSubs[sub] {
				return fmt.Errorf("duplicate subcategory %q in category %q", sub, cat.Name)
			}
			seenSubs[sub] = true
		}
	}
	return nil
}

// Pairs returns every (category, subcategory) combination in catalog
// order: categories in declaration order, subcategories in declaration
// order within each category.
func (c Catalog) Pairs() []Pair {
	var pairs []Pair
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			pairs = append(pairs, Pair{Category: cat.Name, Subcategory: sub})
		}
	}
	return pairs
}

// TotalSubcategories returns the number of (category, subcategory)
// pairs in the catalog.
func (c Catalog) TotalSubcategories() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Subcategories)
	}
	return n
}

// Contains reports whether the given category/subcategory pair exists
// in the catalog.
func (c Catalog) Contains(category, subcategory string) bool {
	for _, cat := range c.Categories {
		if cat.Name != category {
			continue
		}
		for _, sub := range cat.Subcategories {
			if sub == subcategory {
				return true
			}
		}
		return false
	}
	return false
}

// Default returns the built-in DIMO vehicle telemetry catalog.
func Default() Catalog {
	return Catalog{
		Name:        "dimo",
		Description: "DIMO vehicle telemetry schema",
		Categories: []Category{
			{
				Name: "vehicle_info_status",
				Subcategories: []string{
					"odometer_reading",
					"ignition_status",
					"vehicle_speed",
					"powertrain_type",
					"remaining_range",
				},
			},
			{
				Name: "location_data",
				Subcategories: []string{
					"latitude_longitude",
					"altitude",
					"approximate_location",
					"location_privacy_zones",
				},
			},
			{
				Name: "battery_charging",
				Subcategories: []string{
					"state_of_charge",
					"charging_status",
					"charge_limit",
					"battery_power",
					"charging_current_voltage",
					"gross_battery_capacity",
					"remaining_energy",
					"low_voltage_battery",
				},
			},
			{
				Name: "engine_metrics",
				Subcategories: []string{
					"engine_rpm",
					"throttle_position",
					"engine_air_intake",
					"oil_level",
					"coolant_temperature",
				},
			},
			{
				Name: "fuel_system",
				Subcategories: []string{
					"fuel_type",
					"fuel_percentage",
					"fuel_level_liters",
				},
			},
			{
				Name: "tire_pressure",
				Subcategories: []string{
					"front_left_wheel",
					"front_right_wheel",
					"rear_left_wheel",
					"rear_right_wheel",
				},
			},
			{
				Name: "doors_windows",
				Subcategories: []string{
					"front_driver_door",
					"front_passenger_door",
					"rear_driver_door",
					"rear_passenger_door",
					"front_driver_window",
					"front_passenger_window",
					"rear_driver_window",
					"rear_passenger_window",
				},
			},
			{
				Name: "diagnostics",
				Subcategories: []string{
					"diagnostic_trouble_codes",
					"engine_runtime",
					"intake_temperature",
					"engine_load",
					"barometric_pressure",
				},
			},
			{
				Name: "environmental",
				Subcategories: []string{
					"exterior_air_temperature",
				},
			},
			{
				Name: "device_connectivity",
				Subcategories: []string{
					"wifi_status",
					"ssid",
					"gps_satellites",
					"gps_precision",
				},
			},
		},
	}
}
