// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

type seedProduct struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	Barcode string  `yaml:"barcode"`
	Price   float64 `yaml:"price"`
	Stock   int     `yaml:"stock"`
	Expiry  string  `yaml:"expiry"` // YYYY-MM-DD
}

type catalogue struct {
	Products []seedProduct `yaml:"products"`
}

func (sp seedProduct) toProduct() (Product, error) {
	p := Product{
		ID:      sp.ID,
		Name:    sp.Name,
		Barcode: sp.Barcode,
		Price:   sp.Price,
		Stock:   sp.Stock,
	}
	if sp.Expiry != "" {
		expiry, err := ParseDate(sp.Expiry)
		if err != nil {
			return Product{}, fmt.Errorf("product %d: bad expiry %q: %w", sp.ID, sp.Expiry, err)
		}
		p.Expiry = expiry
	}
	return p, nil
}

// LoadCatalogue seeds inv from a YAML file and returns the number of products loaded.
func LoadCatalogue(path string, inv *Inventory, progress io.Writer) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalogue: %w", err)
	}
	return SeedCatalogue(data, inv, progress)
}

// SeedCatalogue loads every product in data. Invalid entries abort the
// load; entries already stored stay in place. A nil progress writer
// disables the progress bar.
func SeedCatalogue(data []byte, inv *Inventory, progress io.Writer) (int, error) {
	var cat catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return 0, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(cat.Products),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Loading catalogue..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	loaded := 0
	for _, sp := range cat.Products {
		p, err := sp.toProduct()
		if err == nil {
			err = inv.Seed(p)
		}
		if err != nil {
			return loaded, err
		}
		loaded++
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return loaded, nil
}
