// Package smoglab is a classroom playground for watching pollution spread
// across a city grid: drop a source, turn the rate knob and see the cloud
// smear out step by step.
//
// 🚀 What is smoglab?
//
//	A small simulation kit that brings together:
//		• Field: a rectangular grid of concentrations with a fixed border
//		• Diffusion: each step blends every interior cell with its 3×3 mean
//		• Sources: fixed placements, seeded random drops, live air-quality feeds
//		• Driver: periodic injection, pacing, cancellation and frame hooks
//		• Output: PNG and HTML heatmaps, MJPEG video, ASCII art, a live window
//		• Plumes: connected polluted regions with size, mass and peak
//
// ✨ Why smoglab?
//
//   - Deterministic: a seed reproduces a run exactly
//   - Fail fast: bad coordinates and rates are errors, never clamped
//   - Snapshots: every step returns a new Field, old ones stay valid
//
// Packages:
//
//	field/       Field, Position, SetPoint, Diffuse, statistics, gonum interop
//	source/      Sampler interface, Fixed and Random samplers, Apply
//	airquality/  WAQI-style feed client and a Sampler mapping readings onto the grid
//	sim/         Config (YAML), Simulation driver: Step, Run, InjectRandom, SetRate
//	render/      palettes, Image, heatmaps, VideoRecorder, Text
//	plume/       connected-region analysis of a Field
//	cmd/smogsim   headless runs writing pictures
//	cmd/smogview  interactive ebiten window
//
// Quick ASCII example, one step at rate 0.2 from a single source of 100:
//
//	 . . . . .        . . . . .
//	 . . . . .        . + + + .
//	 . . @ . .   →    . + @ + .
//	 . . . . .        . + + + .
//	 . . . . .        . . . . .
//
//	center 82.22, each neighbour 2.22, border untouched, mass 100.
//
//	go run github.com/katalvlaran/smoglab/cmd/smogsim -steps 50 -png final.png
package smoglab
