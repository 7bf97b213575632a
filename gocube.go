// Package gocube animates a 3x3x3 twisty puzzle.
//
// An Animator owns a logical cube, a scene graph holding 26 cubelets, and a
// driver that turns one layer at a time: each move is decoded into an axis,
// a layer and an angle, applied to the logical cube, then animated by
// grouping the layer under a pivot node, rotating the pivot and handing the
// cubelets back to the cube container.
//
// # Quick Start
//
//	anim, err := gocube.NewAnimator(gocube.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	anim.OnMove(func(ev gocube.MoveEvent) {
//	    if ev.Kind == gocube.MoveCompleted {
//	        fmt.Println("Move:", ev.Move.Notation())
//	    }
//	})
//
//	// Drive from your render loop, once per frame:
//	anim.Tick(16 * time.Millisecond)
//
// # Scripted Moves
//
//	moves, _ := gocube.ParseMoves("R U R' U'")
//	anim, _ := gocube.NewAnimator(gocube.WithScript(moves, false))
//	_ = anim.Run(ctx, 60)
//
// # Predefined Moves
//
//	gocube.R      // Right clockwise
//	gocube.RPrime // Right counter-clockwise
//	gocube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
package gocube
