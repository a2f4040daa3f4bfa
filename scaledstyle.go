// Package scaledstyle scales style definitions to the device screen and
// re-derives component styles when the window orientation changes.
//
// # Scaling
//
// Style values are authored against a baseline frame (375x667 by default)
// and resolved once for the current device:
//
//	engine := scaledstyle.NewEngine(scaledstyle.DefaultConfig(
//		scaledstyle.Size{Width: 750, Height: 1334},
//		scaledstyle.Large,
//	))
//	resolved := engine.ResolveTable(scaledstyle.Table{
//		"card": {
//			"width":     scaledstyle.Number(20),                  // [10, 20] by device, then x2
//			"padding":   scaledstyle.Pair(scaledstyle.Number(5),  // explicit [compact, large]
//				scaledstyle.Number(20)),
//			"gap_V":     scaledstyle.Number(8),                   // scaled vertically, key "gap"
//			"alignSelf": scaledstyle.String("center"),            // strings are never scaled
//		},
//	})
//
// Keys are classified by Rules: explicit vertical and horizontal key sets
// first, then the _V, _H and _I suffix markers, then the ignore set, and
// finally the default path.
//
// # Orientation
//
// A Resolver observes a Window and hands a consumer its effective style and
// extra props:
//
//	r := scaledstyle.NewResolver(window,
//		scaledstyle.WithLandscapeStyle(resolved["cardLandscape"]),
//		scaledstyle.WithExtraProps(scaledstyle.Props{"numberOfLines": 3}),
//	)
//	r.OnChange(func(scaledstyle.Update) { rerender(r.Props(props)) })
//	r.Activate()
//	defer r.Deactivate()
//
// # CLI Tool
//
// The scaledstyle command resolves CSS or YAML definition files:
//
//	go install github.com/yacobolo/scaledstyle/cmd/scaledstyle@latest
package scaledstyle
