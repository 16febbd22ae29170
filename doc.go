// Package swipedeck is a swipeable card deck widget for [Ebitengine].
//
// The deck renders the current card on top of a short, vertically offset
// stack of the cards that follow it. Dragging the top card moves and rotates
// it; releasing it past half the viewport width throws it off screen and
// reports the outcome, anything shorter springs it back to the center.
//
// # Quick start
//
//	stack := swipedeck.NewCardStack(swipedeck.Config[Profile]{
//		Data:              profiles,
//		Width:             480,
//		RenderCard:        renderProfile,
//		RenderNoMoreCards: renderEmpty,
//		OnSwipeRight:      func(p Profile) { liked = append(liked, p) },
//	})
//
//	scene := swipedeck.NewScene()
//	scene.Root().AddChild(stack.Node())
//	swipedeck.Run(scene, swipedeck.RunConfig{Title: "Deck", Width: 480, Height: 720})
//
// # Scene graph
//
// Cards are ordinary [Node] trees. [RenderCard] callbacks build them from
// [NewContainer] and [NewSprite]; the deck owns the node that wraps each card
// and drives its position and rotation. Nodes with an OnUpdate callback are
// ticked once per frame by [Scene.Update]; the deck uses this to advance its
// animations.
//
// # Animation
//
// Position changes run through [TweenGroup] (backed by [gween]). The drag
// position of the top card is an [AnimatedVec2], and cursor advances request
// a spring-eased [LayoutTransition] for the rest of the stack.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [RenderCard]: Config.RenderCard
package swipedeck
