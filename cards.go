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
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired cards every 5 minutes
	cardCacheCleanup = 5 * time.Minute
	expiryWarnDays   = 30
)

// CardRenderer turns products into markdown report cards and caches the
// rendered terminal output per product ID.
type CardRenderer struct {
	cache    *cache.Cache
	renderer *glamour.TermRenderer
	ttl      time.Duration
	lowStock int
	now      func() time.Time
}

func NewCardRenderer(config CardsConfig, lowStock int) (*CardRenderer, error) {
	style := glamour.WithAutoStyle()
	if config.Style != "" && config.Style != "auto" {
		style = glamour.WithStandardStyle(config.Style)
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(config.WordWrap))
	if err != nil {
		return nil, fmt.Errorf("failed to create card renderer: %w", err)
	}

	ttl := time.Duration(config.CacheMinutes) * time.Minute
	return &CardRenderer{
		cache:    cache.New(ttl, cardCacheCleanup),
		renderer: renderer,
		ttl:      ttl,
		lowStock: lowStock,
		now:      time.Now,
	}, nil
}

func cardKey(id int) string {
	return strconv.Itoa(id)
}

// Render returns the cached card for p, rendering it on a miss.
func (cr *CardRenderer) Render(p Product) (string, error) {
	if val, ok := cr.cache.Get(cardKey(p.ID)); ok {
		return val.(string), nil
	}

	out, err := cr.renderer.Render(cr.Markdown(p))
	if err != nil {
		return "", fmt.Errorf("failed to render card for %d: %w", p.ID, err)
	}
	cr.cache.Set(cardKey(p.ID), out, cr.ttl)
	return out, nil
}

// Invalidate drops the cached card so the next Render reflects new data.
func (cr *CardRenderer) Invalidate(id int) {
	cr.cache.Delete(cardKey(id))
}

func (cr *CardRenderer) Cached() int {
	return cr.cache.ItemCount()
}

// Markdown is the unrendered card, also used for clipboard copies.
func (cr *CardRenderer) Markdown(p Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| ID | %d |\n", p.ID)
	if p.Barcode != "" {
		fmt.Fprintf(&b, "| Barcode | %s |\n", p.Barcode)
	}
	fmt.Fprintf(&b, "| Price | %.2f |\n", p.Price)
	fmt.Fprintf(&b, "| Stock | %d |\n", p.Stock)
	if !p.Expiry.IsZero() {
		fmt.Fprintf(&b, "| Expiry | %s |\n", FormatDate(p.Expiry))
	}

	var notes []string
	if p.Stock <= cr.lowStock {
		notes = append(notes, fmt.Sprintf("**Low stock**: %d left (threshold %d).", p.Stock, cr.lowStock))
	}
	if !p.Expiry.IsZero() {
		switch days := DaysUntil(cr.now(), p.Expiry); {
		case days < 0:
			notes = append(notes, fmt.Sprintf("**Expired** %d days ago.", -days))
		case days <= expiryWarnDays:
			notes = append(notes, fmt.Sprintf("Expires in %d days.", days))
		}
	}
	if len(notes) > 0 {
		b.WriteString("\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "* %s\n", n)
		}
	}
	return b.String()
}
