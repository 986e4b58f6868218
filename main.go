// Copyright
// SPDX-License-Identifier: MIT
// pictor: terminal image viewer with fit/zoom/pan, rotate and flip, and folder navigation
package main

import (
	"flag"
	"fmt"
	"os"

	"pictor/internal/config"
	"pictor/internal/session"
	"pictor/internal/tui"
)

const Version = "0.3.0"

func main() {
	var (
		cfgPath     string
		showVersion bool
		wrap        bool
	)
	fs := flag.NewFlagSet("pictor", flag.ExitOnError)
	fs.StringVar(&cfgPath, "config", "", "config file path (default: user config dir)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.BoolVar(&wrap, "wrap", false, "wrap folder navigation past the ends")
	fs.Usage = usage
	fs.Parse(os.Args[1:])

	if showVersion {
		fmt.Println("pictor", Version)
		return
	}

	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fatal(err)
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}
	if wrap {
		cfg.WrapNavigation = true
	}

	target := fs.Arg(0)
	if target == "" {
		target = cfg.DefaultDir
	}
	if target == "" {
		target = "."
	}

	sess := session.New(session.Options{
		PanStep:     cfg.PanStep,
		InfoVisible: cfg.InfoPanel,
		NavVisible:  cfg.NavPanel,
		Wrap:        cfg.WrapNavigation,
	})
	defer sess.Close()

	req, err := sess.Open(target)
	if err != nil {
		fatal(err)
	}

	if err := tui.Run(sess, req); err != nil {
		fatal(err)
	}

	// Panel visibility survives across runs.
	cfg.InfoPanel = sess.InfoVisible
	cfg.NavPanel = sess.NavVisible
	if err := config.Save(cfgPath, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "pictor: save config:", err)
	}
}

func usage() {
	fmt.Println(`pictor ` + Version + `
View images in the terminal: fit-to-window or explicit zoom, panning,
rotate/flip, and arrow-key navigation through the containing folder.

USAGE
  pictor [options] [path]

  path may be an image file or a folder. With a file, the rest of its
  folder is reachable with ←/→. With a folder, the first supported file
  opens. Defaults to the configured folder, then the current directory.

OPTIONS
  --config PATH   Use PATH instead of the per-user config file
  --wrap          Wrap folder navigation past the ends
  --version       Print version

KEYS
  ←/→ previous/next   r/R rotate   h/v flip   +/- zoom   f fit
  1 actual size   0 recenter   ctrl+arrows pan   i info   n files
  y copy path   ? help   q quit

Formats: PNG, JPEG, GIF, BMP, TIFF, WebP; SVG and PDF (first page, no
rotate/flip).`)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pictor:", err)
	os.Exit(1)
}
