package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-explorer/maze"
	"github.com/lixenwraith/maze-explorer/navigation"
)

func main() {
	log.SetOutput(io.Discard)
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE GENERATOR ===")

		size := getInt(reader, fmt.Sprintf("Size [Odd preferred] (default %d): ", maze.DefaultSize), maze.DefaultSize)
		braid := getFloat(reader, fmt.Sprintf("Braid Ratio [0.0 - 1.0] (default %.2f): ", maze.DefaultBraidRatio), maze.DefaultBraidRatio)
		seed := int64(getInt(reader, "Seed [0 = random] (default 0): ", 0))

		cfg := maze.Config{Size: size, BraidRatio: braid, Seed: seed}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		g, err := maze.Generate(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("Done in %v\n", dur)
			bfs := navigation.Run(g, navigation.NearestFirst)
			dfs := navigation.Run(g, navigation.DeepestFirst)
			report(os.Stdout, g, bfs, dfs)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

// report prints the grid summary and the maze with both paths overlaid
func report(w io.Writer, g *maze.Grid, bfs, dfs navigation.Result) {
	fmt.Fprintf(w, "Grid: %dx%d, %d open cells\n", g.Size(), g.Size(), len(g.OpenCells()))
	fmt.Fprintf(w, "%s path: %d steps\n", navigation.NearestFirst, bfs.Length)
	fmt.Fprintf(w, "%s path: %d steps\n", navigation.DeepestFirst, dfs.Length)
	draw(w, g, bfs, dfs)
}

// draw marks the shortest path with • and cells only on the DFS path with ·
func draw(w io.Writer, g *maze.Grid, bfs, dfs navigation.Result) {
	shortest := bfs.Cells()
	deep := dfs.Cells()

	var sb strings.Builder
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			p := maze.Point{Row: row, Col: col}

			switch {
			case p == g.Start():
				sb.WriteRune('S')
			case p == g.End():
				sb.WriteRune('E')
			case !g.IsOpen(p):
				sb.WriteRune('█')
			case shortest[p]:
				sb.WriteRune('•')
			case deep[p]:
				sb.WriteRune('·')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
