package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/swipedeck"
)

// deckFile is the TOML layout of a deck:
//
//	[window]
//	title = "Adoptable dogs"
//	width = 480
//	height = 720
//
//	[[cards]]
//	id = "rex"
//	title = "Rex"
//	subtitle = "3 years, loves fetch"
//	color = "#e07a5f"
type deckFile struct {
	Window windowConfig `toml:"window"`
	Cards  []cardConfig `toml:"cards"`
}

type windowConfig struct {
	Title      string  `toml:"title"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	CardHeight float64 `toml:"card_height"`
	TopMargin  float64 `toml:"top_margin"`

	// DragDeadZone is how far in pixels a press must move before the card
	// follows it. Zero keeps the scene default.
	DragDeadZone float64 `toml:"drag_dead_zone"`
}

type cardConfig struct {
	ID       string `toml:"id"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Color    string `toml:"color"`
}

// card is the deck item shown by the demo.
type card struct {
	ID       string
	Title    string
	Subtitle string
	Color    swipedeck.Color
}

func (c card) CardKey() string { return c.ID }

func loadDeckFile(path string) (deckFile, error) {
	var f deckFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return deckFile{}, fmt.Errorf("decode deck file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return deckFile{}, fmt.Errorf("decode deck file %s: unknown key %q", path, undecoded[0].String())
	}
	f.Window.applyDefaults()
	if err := f.validate(); err != nil {
		return deckFile{}, fmt.Errorf("deck file %s: %w", path, err)
	}
	return f, nil
}

func (w *windowConfig) applyDefaults() {
	if w.Title == "" {
		w.Title = "swipedeck"
	}
	if w.Width == 0 {
		w.Width = 480
	}
	if w.Height == 0 {
		w.Height = 720
	}
	if w.CardHeight == 0 {
		w.CardHeight = 480
	}
	if w.TopMargin == 0 {
		w.TopMargin = 60
	}
}

func (f deckFile) validate() error {
	if f.Window.Width < 0 || f.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", f.Window.Width, f.Window.Height)
	}
	if f.Window.DragDeadZone < 0 {
		return fmt.Errorf("drag_dead_zone %v is negative", f.Window.DragDeadZone)
	}
	seen := make(map[string]bool, len(f.Cards))
	for i, c := range f.Cards {
		if c.ID == "" {
			return fmt.Errorf("card %d: id is required", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("card %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// cards converts the file entries into deck items, in file order.
func (f deckFile) cards() ([]card, error) {
	out := make([]card, 0, len(f.Cards))
	for _, c := range f.Cards {
		col := swipedeck.Color{R: 0.85, G: 0.85, B: 0.9, A: 1}
		if c.Color != "" {
			parsed, err := colorful.Hex(c.Color)
			if err != nil {
				return nil, fmt.Errorf("card %q: color: %w", c.ID, err)
			}
			col = swipedeck.Color{R: parsed.R, G: parsed.G, B: parsed.B, A: 1}
		}
		title := c.Title
		if title == "" {
			title = c.ID
		}
		out = append(out, card{ID: c.ID, Title: title, Subtitle: c.Subtitle, Color: col})
	}
	return out, nil
}

// defaultDeckFile is used when no deck file is configured.
func defaultDeckFile() deckFile {
	f := deckFile{
		Cards: []cardConfig{
			{ID: "1", Title: "Card #1", Subtitle: "Swipe me", Color: "#e07a5f"},
			{ID: "2", Title: "Card #2", Subtitle: "Drag past half the width", Color: "#3d405b"},
			{ID: "3", Title: "Card #3", Subtitle: "Or let go early", Color: "#81b29a"},
			{ID: "4", Title: "Card #4", Color: "#f2cc8f"},
			{ID: "5", Title: "Card #5", Color: "#6d597a"},
		},
	}
	f.Window.applyDefaults()
	return f
}
