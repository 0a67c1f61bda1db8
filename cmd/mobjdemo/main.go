// Command mobjdemo builds a few mobjects, prints their reconstructed shape
// structure, and exports the tessellated meshes as glTF. With -serve it also
// starts the live JSON viewer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/gogpu/mobject"
	"github.com/gogpu/mobject/export"
	"github.com/gogpu/mobject/render"
	"github.com/gogpu/mobject/viewer"
)

func main() {
	var (
		out   = flag.String("out", "mobjects.gltf", "glTF output file")
		serve = flag.String("serve", "", "viewer listen address (empty disables)")
		theme = flag.String("theme", "", "YAML theme file")
		dump  = flag.Bool("dump", false, "dump reconstructed shapes")
	)
	flag.Parse()

	mobject.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var styles map[string]mobject.Style
	if *theme != "" {
		var err error
		styles, err = mobject.LoadThemeFile(*theme)
		if err != nil {
			log.Fatalf("loading theme: %v", err)
		}
	}

	r := render.New()
	mobjects := buildDemo(r, styles)

	if *dump {
		for _, m := range mobjects {
			spew.Printf("%s: %v\n", m.ID(), m.Shapes())
		}
	}

	var entries []export.Entry
	for _, m := range mobjects {
		entries = append(entries, export.FromMobject(m)...)
	}
	if err := export.Save(*out, entries); err != nil {
		log.Fatalf("exporting %s: %v", *out, err)
	}
	log.Printf("exported %d meshes to %s", len(entries), *out)

	if *serve != "" {
		srv := viewer.NewServer()
		for _, m := range mobjects {
			srv.Register(m)
		}
		log.Fatal(srv.ListenAndServe(*serve))
	}
}

func buildDemo(r *render.Renderer, styles map[string]mobject.Style) []*mobject.Mobject {
	var opts []mobject.StyleOption
	if s, ok := styles["demo"]; ok {
		opts = s.Options()
	}

	square, err := mobject.New("square", mobject.SquareControlPoints(-3, -1, 2), r, opts...)
	if err != nil {
		log.Fatalf("square: %v", err)
	}

	ring, err := mobject.New("ring",
		mobject.AnnulusControlPoints(1, 0, 1.5, 0.75), r,
		mobject.WithFillColor(0x58C4DD),
		mobject.WithStrokeWidth(6),
	)
	if err != nil {
		log.Fatalf("ring: %v", err)
	}
	ring.SetRotation(0, 0, math.Pi/8)

	star, err := mobject.New("star", starControlPoints(0, 3, 1.2, 0.5, 5), r,
		mobject.WithFillColor(0xFFFF00),
		mobject.WithFillOpacity(0.9),
	)
	if err != nil {
		log.Fatalf("star: %v", err)
	}

	return []*mobject.Mobject{square, ring, star}
}

func starControlPoints(cx, cy, outer, inner float64, points int) []mobject.Point {
	corners := make([]mobject.Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i) * math.Pi / float64(points)
		corners = append(corners, mobject.Pt(cx+r*math.Sin(a), cy+r*math.Cos(a)))
	}
	return mobject.PolygonControlPoints(corners...)
}
