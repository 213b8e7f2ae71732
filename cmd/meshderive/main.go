// Command meshderive computes contour lines or a thickened shell from a
// geometry dictionary and writes the resulting points to a file.
//
//	meshderive -mode contours -in geom.json -o contours.f32
//	meshderive -mode shell -db dicts.sqlite -handle u123 -o shell.stl
//
// When both -in and -db are given the dictionary is first stored in the
// database under -handle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"meshderive/src/config"
	"meshderive/src/geomdict"
	"meshderive/src/geometry"
	"meshderive/src/host"
	"meshderive/src/render"
)

func main() {
	mode := flag.String("mode", "contours", "extraction: contours or shell")
	in := flag.String("in", "", "geometry dictionary JSON file")
	dbPath := flag.String("db", "", "SQLite dictionary store")
	handle := flag.String("handle", "geom", "dictionary handle")
	cfgPath := flag.String("config", "", "parameter file (.json, .yaml)")
	threshold := flag.Float64("threshold", geometry.DefaultThreshold, "contour cosine threshold")
	thickness := flag.Float64("thickness", geometry.DefaultThickness, "shell thickness")
	offsetMode := flag.String("offset-mode", geometry.OffsetFirstNormal.String(), "shell offset: first-normal or vertex-normals")
	output := flag.String("o", "", "output path (.stl for shells, raw float32 otherwise)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		geometry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *in == "" && *dbPath == "" {
		log.Fatal("one of -in or -db is required")
	}

	params := config.Defaults()
	if *cfgPath != "" {
		p, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		params = p
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			params.Threshold = threshold
		case "thickness":
			params.Thickness = thickness
		case "offset-mode":
			params.OffsetMode = offsetMode
		}
	})
	if err := params.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, *in, *dbPath, *handle)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	var result geometry.Buffer
	sink := render.SinkFunc(func(dest string, p render.Primitive, buf geometry.Buffer) error {
		result = buf
		return writeOutput(*output, dest, p, buf)
	})

	h := host.New(geomdict.NewLoader(store), sink)
	params.ApplyContour(h.Contours)
	params.ApplyShell(h.Shell)

	dest := strings.TrimSuffix(filepath.Base(*output), filepath.Ext(*output))
	switch *mode {
	case "contours":
		_, err = h.DrawContours(ctx, *handle, dest)
	case "shell":
		_, err = h.Thicken(ctx, *handle, dest)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		closeStore()
		log.Fatal(err)
	}
	log.Printf("%s: %d points", *mode, result.Len())
}

func openStore(ctx context.Context, in, dbPath, handle string) (geomdict.Store, func(), error) {
	var body []byte
	if in != "" {
		b, err := os.ReadFile(in)
		if err != nil {
			return nil, nil, err
		}
		body = b
	}

	if dbPath == "" {
		s := geomdict.NewMemoryStore()
		if err := s.Put(ctx, handle, body); err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}

	s, err := geomdict.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		if err := s.Put(ctx, handle, body); err != nil {
			s.Close()
			return nil, nil, err
		}
	}
	return s, func() { s.Close() }, nil
}

func writeOutput(path, dest string, p render.Primitive, buf geometry.Buffer) error {
	if path == "" {
		return nil
	}
	if filepath.Ext(path) == ".stl" {
		return render.STLSink{Dir: filepath.Dir(path)}.Emit(dest, p, buf)
	}
	return os.WriteFile(path, render.PackVertices(buf), 0o644)
}
