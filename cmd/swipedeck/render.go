package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/swipedeck"
)

const (
	cardMargin   = 16.0
	labelWidth   = 240
	labelHeight  = 40
	labelPadding = 24.0
)

// renderCard draws a card as a colored panel with its title and subtitle
// printed in the top-left corner.
func renderCard(w windowConfig) func(card) *swipedeck.Node {
	return func(c card) *swipedeck.Node {
		content := swipedeck.NewContainer("content:" + c.ID)

		panel := swipedeck.NewRect("panel:"+c.ID,
			float64(w.Width)-2*cardMargin, w.CardHeight, c.Color)
		panel.SetPosition(cardMargin, 0)
		content.AddChild(panel)

		label := swipedeck.NewSprite("label:"+c.ID, textImage(c.Title+"\n"+c.Subtitle))
		label.SetPosition(cardMargin+labelPadding, labelPadding)
		label.SetScale(2, 2)
		content.AddChild(label)

		return content
	}
}

// renderNoMoreCards is shown once every card has been swiped.
func renderNoMoreCards(w windowConfig) func() *swipedeck.Node {
	return func() *swipedeck.Node {
		msg := swipedeck.NewSprite("no-more-cards", textImage("All done!\nNo more cards."))
		msg.SetScale(2, 2)
		msg.SetPosition(float64(w.Width)/2-labelWidth/2, w.CardHeight/3)
		return msg
	}
}

func textImage(s string) *ebiten.Image {
	img := ebiten.NewImage(labelWidth, labelHeight)
	img.Fill(color.Transparent)
	ebitenutil.DebugPrint(img, s)
	return img
}
