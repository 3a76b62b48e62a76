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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cybrota/pharmadex/containers"
	"github.com/willf/bloom"
)

var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrDuplicateProduct  = errors.New("product already exists")
	ErrDuplicateBarcode  = errors.New("barcode already in use")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrQueueEmpty        = errors.New("no customers waiting")
	ErrNothingToUndo     = errors.New("nothing to undo")
)

const (
	// Sized for a single shop's catalogue; false positives only cost a tree walk.
	barcodeCapacity      = 10000
	barcodeFalsePositive = 0.01
)

type Product struct {
	ID      int
	Name    string
	Barcode string
	Price   float64
	Stock   int
	Expiry  time.Time // zero when the product does not expire
}

func (p Product) validate() error {
	switch {
	case p.ID <= 0:
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidProduct, p.ID)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}
	return nil
}

type Sale struct {
	Seq       int
	ProductID int
	Name      string
	Quantity  int
	Total     float64
	At        time.Time
}

// Turn is a customer's place in the service queue.
type Turn struct {
	Number   int
	Customer string
	Joined   time.Time
}

type ActionKind int

const (
	ActionCreate ActionKind = iota
	ActionUpdate
	ActionDelete
	ActionSell
)

func (k ActionKind) String() string {
	switch k {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionSell:
		return "sell"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is an undo record. Product holds the created record for
// ActionCreate and the prior record for ActionUpdate/ActionDelete.
type Action struct {
	Kind    ActionKind
	Product Product
	Sale    Sale
	At      time.Time
}

func (a Action) String() string {
	if a.Kind == ActionSell {
		return fmt.Sprintf("sell #%d: %d x %s", a.Sale.Seq, a.Sale.Quantity, a.Sale.Name)
	}
	return fmt.Sprintf("%s #%d %s", a.Kind, a.Product.ID, a.Product.Name)
}

// Inventory owns one instance of each container and is confined to a
// single goroutine.
type Inventory struct {
	products *containers.AvlTree[Product]
	sales    *containers.LinkedList[Sale]
	turns    *containers.LinkedQueue[Turn]
	actions  *containers.Stack[Action]
	barcodes *bloom.BloomFilter

	lowStockThreshold int
	maxSales          int
	nextSale          int
	nextTurn          int
	now               func() time.Time
}

func NewInventory(config *Config) *Inventory {
	return &Inventory{
		products:          containers.NewAvlTree(containers.KeyComparator(func(p Product) int { return p.ID })),
		sales:             containers.NewLinkedList[Sale](),
		turns:             containers.NewLinkedQueue[Turn](),
		actions:           containers.NewStack[Action](),
		barcodes:          bloom.NewWithEstimates(barcodeCapacity, barcodeFalsePositive),
		lowStockThreshold: config.Inventory.LowStockThreshold,
		maxSales:          config.History.MaxEntries,
		nextSale:          1,
		nextTurn:          1,
		now:               time.Now,
	}
}

// SetTracer forwards container narration to fn.
func (inv *Inventory) SetTracer(fn containers.TraceFunc) {
	inv.products.SetTracer(fn)
	inv.sales.SetTracer(fn)
	inv.turns.SetTracer(fn)
	inv.actions.SetTracer(fn)
}

func (inv *Inventory) lookup(id int) (Product, bool) {
	return inv.products.Search(Product{ID: id})
}

func (inv *Inventory) store(p Product) {
	inv.products.Insert(p)
	if p.Barcode != "" {
		inv.barcodes.AddString(p.Barcode)
	}
}

// claimBarcode rejects p when another product already carries its barcode.
func (inv *Inventory) claimBarcode(p Product) error {
	if p.Barcode == "" {
		return nil
	}
	if owner, err := inv.FindByBarcode(p.Barcode); err == nil && owner.ID != p.ID {
		return fmt.Errorf("%w: %q belongs to #%d %s", ErrDuplicateBarcode, p.Barcode, owner.ID, owner.Name)
	}
	return nil
}

func (inv *Inventory) record(a Action) {
	a.At = inv.now()
	inv.actions.Push(a)
}

// Seed stores p without recording an undo entry. Existing IDs are replaced.
func (inv *Inventory) Seed(p Product) error {
	if err := p.validate(); err != nil {
		return err
	}
	if err := inv.claimBarcode(p); err != nil {
		return err
	}
	inv.store(p)
	return nil
}

func (inv *Inventory) AddProduct(p Product) error {
	if err := p.validate(); err != nil {
		return err
	}
	if _, ok := inv.lookup(p.ID); ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateProduct, p.ID)
	}
	if err := inv.claimBarcode(p); err != nil {
		return err
	}
	inv.store(p)
	inv.record(Action{Kind: ActionCreate, Product: p})
	return nil
}

func (inv *Inventory) UpdateProduct(p Product) error {
	if err := p.validate(); err != nil {
		return err
	}
	prior, ok := inv.lookup(p.ID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrProductNotFound, p.ID)
	}
	if err := inv.claimBarcode(p); err != nil {
		return err
	}
	inv.store(p)
	inv.record(Action{Kind: ActionUpdate, Product: prior})
	return nil
}

func (inv *Inventory) DeleteProduct(id int) (Product, error) {
	prior, ok := inv.lookup(id)
	if !ok {
		return Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	inv.products.Delete(prior)
	inv.record(Action{Kind: ActionDelete, Product: prior})
	return prior, nil
}

func (inv *Inventory) FindProduct(id int) (Product, error) {
	p, ok := inv.lookup(id)
	if !ok {
		return Product{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	return p, nil
}

// FindByBarcode consults the bloom filter before walking the index.
// Barcodes are unique across the catalogue.
func (inv *Inventory) FindByBarcode(code string) (Product, error) {
	if code == "" || !inv.barcodes.TestString(code) {
		return Product{}, fmt.Errorf("%w: barcode %q", ErrProductNotFound, code)
	}
	var found Product
	var ok bool
	inv.products.Ascend(func(p Product) bool {
		if p.Barcode == code {
			found, ok = p, true
			return false
		}
		return true
	})
	if !ok {
		return Product{}, fmt.Errorf("%w: barcode %q", ErrProductNotFound, code)
	}
	return found, nil
}

// Products returns the catalogue ordered by ID.
func (inv *Inventory) Products() []Product {
	return inv.products.InOrder()
}

func (inv *Inventory) ProductCount() int {
	return inv.products.Len()
}

// LowStock lists products at or below the configured threshold.
func (inv *Inventory) LowStock() []Product {
	var low []Product
	inv.products.Ascend(func(p Product) bool {
		if p.Stock <= inv.lowStockThreshold {
			low = append(low, p)
		}
		return true
	})
	return low
}

func (inv *Inventory) LowStockThreshold() int {
	return inv.lowStockThreshold
}

// Sell removes qty units from stock and appends the sale to the history.
func (inv *Inventory) Sell(id, qty int) (Sale, error) {
	if qty <= 0 {
		return Sale{}, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	p, ok := inv.lookup(id)
	if !ok {
		return Sale{}, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	if p.Stock < qty {
		return Sale{}, fmt.Errorf("%w: %s has %d, wanted %d", ErrInsufficientStock, p.Name, p.Stock, qty)
	}

	p.Stock -= qty
	inv.products.Insert(p)

	sale := Sale{
		Seq:       inv.nextSale,
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  qty,
		Total:     float64(qty) * p.Price,
		At:        inv.now(),
	}
	inv.nextSale++
	inv.sales.Append(sale)
	if inv.maxSales > 0 && inv.sales.GetSize() > inv.maxSales {
		inv.sales.RemoveAt(0)
	}
	inv.record(Action{Kind: ActionSell, Sale: sale})
	return sale, nil
}

// Sales returns the retained history, oldest first.
func (inv *Inventory) Sales() []Sale {
	return inv.sales.ToArray()
}

func (inv *Inventory) JoinQueue(customer string) (Turn, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return Turn{}, errors.New("customer name is required")
	}
	turn := Turn{Number: inv.nextTurn, Customer: customer, Joined: inv.now()}
	inv.nextTurn++
	inv.turns.Enqueue(turn)
	return turn, nil
}

// ServeNext removes the customer at the front of the queue.
func (inv *Inventory) ServeNext() (Turn, error) {
	turn, ok := inv.turns.Dequeue()
	if !ok {
		return Turn{}, ErrQueueEmpty
	}
	return turn, nil
}

func (inv *Inventory) NextTurn() (Turn, error) {
	turn, ok := inv.turns.Peek()
	if !ok {
		return Turn{}, ErrQueueEmpty
	}
	return turn, nil
}

// FindTurn returns the waiting turn held by customer.
func (inv *Inventory) FindTurn(customer string) (Turn, bool) {
	return inv.turns.Search(func(t Turn) bool {
		return strings.EqualFold(t.Customer, customer)
	})
}

func (inv *Inventory) Turns() []Turn {
	return inv.turns.ToArray()
}

// Actions lists pending undo entries, most recent first.
func (inv *Inventory) Actions() []Action {
	return inv.actions.ToArray()
}

// Undo reverts the most recent catalogue change or sale.
func (inv *Inventory) Undo() (Action, error) {
	a, ok := inv.actions.Pop()
	if !ok {
		return Action{}, ErrNothingToUndo
	}

	switch a.Kind {
	case ActionCreate:
		inv.products.Delete(a.Product)
	case ActionUpdate, ActionDelete:
		inv.store(a.Product)
	case ActionSell:
		if p, ok := inv.lookup(a.Sale.ProductID); ok {
			p.Stock += a.Sale.Quantity
			inv.products.Insert(p)
		}
		inv.sales.RemoveFunc(func(s Sale) bool { return s.Seq == a.Sale.Seq })
	}
	return a, nil
}
