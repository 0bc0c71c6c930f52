// pathprobe is a developer tool for poking at the movement engine: it
// loads a map file (or a directory of region files), builds the navigation
// grid and movement graph, and answers reachability, path, and cell
// diagnostic queries from the command line.
//
// Usage:
//
//	go run ./cmd/pathprobe -map map.yaml -from 0.0 -budget 3
//	go run ./cmd/pathprobe -map maps/ -from 0.0 -to 4.2 -budget 5 -swim
//	go run ./cmd/pathprobe -map map.yaml -probe 312,188
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"hexmarch/internal/config"
	"hexmarch/internal/hex"
	"hexmarch/internal/mapdata"
	"hexmarch/internal/march"
	"hexmarch/internal/nav"
)

func main() {
	var (
		configPath = flag.String("config", "config/engine.yaml", "engine config file")
		mapPath    = flag.String("map", "", "map YAML file or directory of region files")
		from       = flag.String("from", "", "origin hex id (col.row)")
		to         = flag.String("to", "", "target hex id (col.row); omit for reachability only")
		budget     = flag.Float64("budget", 3, "movement point budget")
		fly        = flag.Bool("fly", false, "traveler can fly")
		swim       = flag.Bool("swim", false, "traveler can swim")
		boats      = flag.Bool("boats", false, "traveler has boats")
		amphibious = flag.Bool("amphibious", false, "traveler is amphibious")
		probe      = flag.String("probe", "", "pixel position \"x,y\" to diagnose")
	)
	flag.Parse()

	if err := run(*configPath, *mapPath, *from, *to, *budget, march.Traits{
		CanFly:     *fly,
		CanSwim:    *swim,
		HasBoats:   *boats,
		Amphibious: *amphibious,
	}, *probe); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(configPath, mapPath, from, to string, budget float64, traits march.Traits, probe string) error {
	cfg, err := config.LoadEngine(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if mapPath == "" {
		return fmt.Errorf("-map is required")
	}
	m, err := loadMap(mapPath)
	if err != nil {
		return err
	}

	geom := nav.RegularGrid{
		Size: cfg.HexSizePx,
		Cols: cfg.GridCols,
		Rows: cfg.GridRows,
	}
	grid := nav.BuildGrid(geom, m)
	graph := march.NewGraph(grid, march.CostTable{
		Open:             cfg.Costs.Open,
		Difficult:        cfg.Costs.Difficult,
		GreaterDifficult: cfg.Costs.GreaterDifficult,
		LakeWater:        cfg.Costs.LakeWater,
		SwampWater:       cfg.Costs.SwampWater,
	}, nil)
	graph.RebuildIfChanged(m)

	if probe != "" {
		return runProbe(grid, probe)
	}

	if from == "" {
		return fmt.Errorf("-from is required for movement queries")
	}
	origin, err := hex.ParseID(from)
	if err != nil {
		return err
	}

	if to == "" {
		printReachability(graph.ReachableHexes(origin, budget, traits, nil), origin)
		return nil
	}

	target, err := hex.ParseID(to)
	if err != nil {
		return err
	}
	printPath(graph.FindPath(origin, target, budget, traits, nil, nil))
	return nil
}

func loadMap(path string) (*mapdata.Map, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return mapdata.LoadMapDir(path)
	}
	return mapdata.LoadMap(path)
}

func runProbe(grid *nav.Grid, probe string) error {
	parts := strings.SplitN(probe, ",", 2)
	if len(parts) != 2 {
		return fmt.Errorf("bad -probe %q, want \"x,y\"", probe)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("bad -probe x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("bad -probe y: %w", err)
	}

	info := grid.CellInfoAt(nav.Point{X: x, Y: y})
	fmt.Printf("pixel (%g, %g) -> cell %s\n", x, y, info.Cell)
	if info.OnMap {
		fmt.Printf("hex:      %s\n", info.Hex)
	} else {
		fmt.Println("hex:      off-map")
	}
	fmt.Printf("river:    %v\n", info.RiverBlocked)
	fmt.Printf("lake:     %v\n", info.LakeBlocked)
	fmt.Printf("crossing: %v\n", info.Crossing || info.Passage)
	fmt.Printf("passable: %v\n", info.Passable)
	return nil
}

func printReachability(r march.ReachabilityMap, origin hex.ID) {
	ids := make([]hex.ID, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if r[ids[i]].Cost != r[ids[j]].Cost {
			return r[ids[i]].Cost < r[ids[j]].Cost
		}
		if ids[i].Col != ids[j].Col {
			return ids[i].Col < ids[j].Col
		}
		return ids[i].Row < ids[j].Row
	})

	fmt.Printf("%d hexes reachable from %s:\n", len(ids), origin)
	for _, id := range ids {
		fmt.Printf("  %-8s cost %g\n", id, r[id].Cost)
	}
}

func printPath(res march.PathResult) {
	if len(res.Path) == 0 {
		fmt.Println("no path: origin is off-map")
		return
	}

	steps := make([]string, len(res.Path))
	for i, id := range res.Path {
		steps[i] = fmt.Sprintf("%s(+%g)", id, res.HexCosts[id])
	}
	fmt.Printf("path:  %s\n", strings.Join(steps, " -> "))
	fmt.Printf("cost:  %g\n", res.TotalCost)
	if res.IsReachable {
		fmt.Println("state: target reached")
	} else {
		fmt.Println("state: target out of reach; showing best-effort prefix")
	}
	if res.FinalNavCell != nil {
		fmt.Printf("final cell: %s\n", res.FinalNavCell)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
