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
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-shellwords"
)

// ErrQuit is returned by Execute for "quit" and "exit".
var ErrQuit = errors.New("quit")

type command struct {
	usage    string
	summary  string
	min, max int // accepted argument counts; max < 0 means unbounded
	run      func(s *Shell, args []string) (string, error)
}

var commands = map[string]command{
	"add":     {"add <id> <name> <price> <stock> [barcode] [expiry]", "create a product", 4, 6, (*Shell).add},
	"update":  {"update <id> field=value...", "change name, price, stock, barcode or expiry", 2, -1, (*Shell).update},
	"delete":  {"delete <id>", "remove a product", 1, 1, (*Shell).remove},
	"find":    {"find <id>", "look a product up by id", 1, 1, (*Shell).find},
	"barcode": {"barcode <code>", "look a product up by barcode", 1, 1, (*Shell).barcode},
	"list":    {"list", "list the catalogue ordered by id", 0, 0, (*Shell).list},
	"low":     {"low", "list products at or below the low-stock threshold", 0, 0, (*Shell).low},
	"card":    {"card <id>", "show a product report card", 1, 1, (*Shell).card},
	"copy":    {"copy <id>", "copy a product report card to the clipboard", 1, 1, (*Shell).copyCard},
	"sell":    {"sell <id> <qty>", "record a sale", 2, 2, (*Shell).sell},
	"history": {"history", "show the sales history", 0, 0, (*Shell).history},
	"join":    {"join <customer>", "add a customer to the queue", 1, -1, (*Shell).join},
	"serve":   {"serve", "serve the next customer", 0, 0, (*Shell).serve},
	"next":    {"next", "show who is next without serving", 0, 0, (*Shell).next},
	"turns":   {"turns", "show the waiting queue", 0, 0, (*Shell).turns},
	"undo":    {"undo", "revert the last change or sale", 0, 0, (*Shell).undo},
	"actions": {"actions", "show the undo stack", 0, 0, (*Shell).actions},
}

// Shell parses command lines and forwards them to the Inventory.
type Shell struct {
	inv   *Inventory
	cards *CardRenderer
	copy  func(string) error
}

func NewShell(inv *Inventory, cards *CardRenderer) *Shell {
	return &Shell{inv: inv, cards: cards, copy: clipboard.WriteAll}
}

// Execute runs a single command line and returns its rendered output.
func (s *Shell) Execute(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("could not parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	name := strings.ToLower(args[0])
	switch name {
	case "quit", "exit":
		return "", ErrQuit
	case "help", "?":
		return commandHelp(), nil
	}

	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command %q (try \"help\")", name)
	}
	args = args[1:]
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		return "", fmt.Errorf("usage: %s", cmd.usage)
	}
	return cmd.run(s, args)
}

func commandHelp() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-52s %s\n", commands[name].usage, commands[name].summary)
	}
	fmt.Fprintf(&b, "  %-52s %s\n", "quit", "leave the shell")
	return b.String()
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (s *Shell) add(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	p := Product{ID: id, Name: args[1]}
	if err := applyField(&p, "price", args[2]); err != nil {
		return "", err
	}
	if err := applyField(&p, "stock", args[3]); err != nil {
		return "", err
	}
	if len(args) > 4 {
		p.Barcode = args[4]
	}
	if len(args) > 5 {
		if err := applyField(&p, "expiry", args[5]); err != nil {
			return "", err
		}
	}

	if err := s.inv.AddProduct(p); err != nil {
		return "", err
	}
	s.cards.Invalidate(p.ID)
	return fmt.Sprintf("Added #%d %s.", p.ID, p.Name), nil
}

func applyField(p *Product, field, value string) error {
	var err error
	switch field {
	case "name":
		p.Name = value
	case "barcode":
		p.Barcode = value
	case "price":
		p.Price, err = strconv.ParseFloat(value, 64)
	case "stock":
		p.Stock, err = strconv.Atoi(value)
	case "expiry":
		if value == "" || value == "none" {
			p.Expiry = time.Time{}
			return nil
		}
		p.Expiry, err = ParseDate(value)
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	if err != nil {
		return fmt.Errorf("invalid %s %q", field, value)
	}
	return nil
}

func (s *Shell) update(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	p, err := s.inv.FindProduct(id)
	if err != nil {
		return "", err
	}
	for _, kv := range args[1:] {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return "", fmt.Errorf("expected field=value, got %q", kv)
		}
		if err := applyField(&p, strings.ToLower(field), value); err != nil {
			return "", err
		}
	}

	if err := s.inv.UpdateProduct(p); err != nil {
		return "", err
	}
	s.cards.Invalidate(id)
	return fmt.Sprintf("Updated #%d %s.", p.ID, p.Name), nil
}

func (s *Shell) remove(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	p, err := s.inv.DeleteProduct(id)
	if err != nil {
		return "", err
	}
	s.cards.Invalidate(id)
	return fmt.Sprintf("Deleted #%d %s.", p.ID, p.Name), nil
}

func (s *Shell) find(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	p, err := s.inv.FindProduct(id)
	if err != nil {
		return "", err
	}
	return productTable([]Product{p}), nil
}

func (s *Shell) barcode(args []string) (string, error) {
	p, err := s.inv.FindByBarcode(args[0])
	if err != nil {
		return "", err
	}
	return productTable([]Product{p}), nil
}

func (s *Shell) list(args []string) (string, error) {
	products := s.inv.Products()
	if len(products) == 0 {
		return "No products.", nil
	}
	return productTable(products), nil
}

func (s *Shell) low(args []string) (string, error) {
	products := s.inv.LowStock()
	if len(products) == 0 {
		return fmt.Sprintf("No products at or below %d units.", s.inv.LowStockThreshold()), nil
	}
	return productTable(products), nil
}

func (s *Shell) card(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	p, err := s.inv.FindProduct(id)
	if err != nil {
		return "", err
	}
	return s.cards.Render(p)
}

func (s *Shell) copyCard(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	p, err := s.inv.FindProduct(id)
	if err != nil {
		return "", err
	}
	if err := s.copy(s.cards.Markdown(p)); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("Copied card for #%d to clipboard.", id), nil
}

func (s *Shell) sell(args []string) (string, error) {
	id, err := parseID(args[0])
	if err != nil {
		return "", err
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return "", fmt.Errorf("invalid quantity %q", args[1])
	}
	sale, err := s.inv.Sell(id, qty)
	if err != nil {
		return "", err
	}
	s.cards.Invalidate(id)
	return fmt.Sprintf("Sale #%d: %d x %s = %.2f", sale.Seq, sale.Quantity, sale.Name, sale.Total), nil
}

func (s *Shell) history(args []string) (string, error) {
	sales := s.inv.Sales()
	if len(sales) == 0 {
		return "No sales recorded.", nil
	}
	rows := make([][]string, 0, len(sales))
	var total float64
	for _, sale := range sales {
		rows = append(rows, []string{
			strconv.Itoa(sale.Seq),
			Format(ShortStamp, sale.At),
			sale.Name,
			strconv.Itoa(sale.Quantity),
			fmt.Sprintf("%.2f", sale.Total),
		})
		total += sale.Total
	}
	return renderTable([]string{"#", "When", "Product", "Qty", "Total"}, rows) +
		fmt.Sprintf("\n%d sales, %.2f total", len(sales), total), nil
}

func (s *Shell) join(args []string) (string, error) {
	customer := strings.Join(args, " ")
	if existing, ok := s.inv.FindTurn(customer); ok {
		return "", fmt.Errorf("%s is already waiting with turn %d", existing.Customer, existing.Number)
	}
	turn, err := s.inv.JoinQueue(customer)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has turn %d.", turn.Customer, turn.Number), nil
}

func (s *Shell) serve(args []string) (string, error) {
	turn, err := s.inv.ServeNext()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Now serving turn %d: %s.", turn.Number, turn.Customer), nil
}

func (s *Shell) next(args []string) (string, error) {
	turn, err := s.inv.NextTurn()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Next up: turn %d, %s.", turn.Number, turn.Customer), nil
}

func (s *Shell) turns(args []string) (string, error) {
	turns := s.inv.Turns()
	if len(turns) == 0 {
		return "Nobody is waiting.", nil
	}
	rows := make([][]string, 0, len(turns))
	for _, t := range turns {
		rows = append(rows, []string{strconv.Itoa(t.Number), t.Customer, Format(ShortStamp, t.Joined)})
	}
	return renderTable([]string{"Turn", "Customer", "Joined"}, rows), nil
}

func (s *Shell) undo(args []string) (string, error) {
	a, err := s.inv.Undo()
	if err != nil {
		return "", err
	}
	if a.Kind == ActionSell {
		s.cards.Invalidate(a.Sale.ProductID)
	} else {
		s.cards.Invalidate(a.Product.ID)
	}
	return fmt.Sprintf("Undid %s.", a), nil
}

func (s *Shell) actions(args []string) (string, error) {
	actions := s.inv.Actions()
	if len(actions) == 0 {
		return "Nothing to undo.", nil
	}
	var b strings.Builder
	for i, a := range actions {
		fmt.Fprintf(&b, "%2d. %s (%s)\n", i+1, a, Format(ShortStamp, a.At))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func productTable(products []Product) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		expiry := "-"
		if !p.Expiry.IsZero() {
			expiry = FormatDate(p.Expiry)
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Barcode,
			fmt.Sprintf("%.2f", p.Price),
			strconv.Itoa(p.Stock),
			expiry,
		})
	}
	return renderTable([]string{"ID", "Name", "Barcode", "Price", "Stock", "Expiry"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// RunShell reads commands from in until EOF or "quit".
func RunShell(sh *Shell, in io.Reader, out io.Writer, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(out, "%spharmadex>%s ", Info, Reset)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		res, err := sh.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "%s%v%s\n", Error, err, Reset)
			continue
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
	}
}
