// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import "testing"

func TestLookup(t *testing.T) {
	d, ok := Lookup("MenuSection")
	if !ok {
		t.Fatal("MenuSection not found")
	}
	if d.Name != "MenuSection" {
		t.Errorf("Name = %q", d.Name)
	}

	if _, ok := Lookup("NoSuchComponent"); ok {
		t.Error("Lookup(NoSuchComponent) reported found")
	}
}

func TestEveryDescriptorHasCompleteDefaults(t *testing.T) {
	for _, d := range All() {
		t.Run(d.Name, func(t *testing.T) {
			if d.Category == "" || d.Description == "" {
				t.Error("missing category or description")
			}
			for _, spec := range d.Props {
				if spec.Name == "" {
					t.Error("prop with empty name")
				}
				switch spec.Type {
				case TypeString:
					if _, ok := spec.Default.(string); !ok {
						t.Errorf("prop %s: string default is %T", spec.Name, spec.Default)
					}
				case TypeList:
					def, ok := spec.Default.([]any)
					if !ok || len(def) == 0 {
						t.Errorf("prop %s: list default empty or wrong-shaped", spec.Name)
					}
					if len(spec.Item) == 0 {
						t.Errorf("prop %s: list without item specs", spec.Name)
					}
					// Default elements must carry exactly the declared item keys,
					// otherwise normalization would not be idempotent.
					for i, item := range def {
						m, ok := item.(map[string]any)
						if !ok {
							t.Errorf("prop %s: default element %d is %T", spec.Name, i, item)
							continue
						}
						if len(m) != len(spec.Item) {
							t.Errorf("prop %s: default element %d has %d keys, item spec has %d",
								spec.Name, i, len(m), len(spec.Item))
						}
						for _, sub := range spec.Item {
							if _, present := m[sub.Name]; !present {
								t.Errorf("prop %s: default element %d missing %q", spec.Name, i, sub.Name)
							}
						}
					}
				}
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Error("All() exposes internal descriptor state")
	}
}
