// Command kapitza runs the full surface-Green's-function pipeline as a batch
// computation: condition the Hessian dump, decompose the lead blocks,
// Fourier-transform them over the transverse wavevector grid, and sweep the
// decimation solver over the requested frequency range.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openkapitza/kapitza/blocks"
	"github.com/openkapitza/kapitza/fourier"
	"github.com/openkapitza/kapitza/green"
	"github.com/openkapitza/kapitza/heatmap"
	"github.com/openkapitza/kapitza/hessian"
	"github.com/openkapitza/kapitza/lammps"
)

// leadConfig names the two decomposition targets of one lead.
type leadConfig struct {
	BulkIndex    [3]int `yaml:"bulk_index"`
	SurfaceIndex [3]int `yaml:"surface_index"`
}

// config is the YAML run description.
type config struct {
	HessianFile     string `yaml:"hessian_file"`
	HessianSkipRows int    `yaml:"hessian_skip_rows"`
	CrystalFile     string `yaml:"crystal_file"`
	CrystalSkipRows int    `yaml:"crystal_skip_rows"`

	NatmPerUnitCell int    `yaml:"natm_per_unitcell"`
	Rep             [3]int `yaml:"rep"`
	BlockSize       int    `yaml:"block_size"`

	Left  leadConfig `yaml:"left"`
	Right leadConfig `yaml:"right"`

	NumKpoints        int     `yaml:"num_kpoints"`
	PeriodicityLength float64 `yaml:"periodicity_length"` // meters; 0 selects the x lattice constant
	PhaseSign         int     `yaml:"phase_sign"`         // +1 or −1; 0 selects the default

	OmegaMin float64 `yaml:"omega_min"`
	OmegaMax float64 `yaml:"omega_max"`
	OmegaNum int     `yaml:"omega_num"`
	Delta    float64 `yaml:"delta"`

	Workers int  `yaml:"workers"`
	Verbose bool `yaml:"verbose"`

	// HessianHeatmap, when set, renders the conditioned Hessian there.
	HessianHeatmap string `yaml:"hessian_heatmap"`
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("The path of the configuration file must be specified in the arguments")
	}

	log.Printf("Reading configuration file `%s`\n", os.Args[1])
	cfg, err := readConfig(os.Args[1])
	if err != nil {
		log.Fatal(fmt.Errorf("config: %w", err))
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	log.Println("Done")
}

func readConfig(path string) (*config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Defaults matching the reference runs.
	cfg := &config{
		CrystalSkipRows: 9,
		BlockSize:       1,
		NumKpoints:      1,
		OmegaNum:        1,
		Delta:           green.DefaultDelta,
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cfg *config) error {
	log.Println("Conditioning the Hessian matrix")
	raw, err := lammps.ReadHessian(cfg.HessianFile, cfg.HessianSkipRows)
	if err != nil {
		return fmt.Errorf("read hessian: %w", err)
	}
	h, err := hessian.Symmetrize(raw)
	if err != nil {
		return fmt.Errorf("symmetrize: %w", err)
	}

	points, err := lammps.ReadCrystal(cfg.CrystalFile, cfg.CrystalSkipRows)
	if err != nil {
		return fmt.Errorf("read crystal: %w", err)
	}
	crystal, err := hessian.NewCrystal(points, cfg.NatmPerUnitCell)
	if err != nil {
		return fmt.Errorf("crystal: %w", err)
	}

	bounds, err := lammps.ReadBoxBounds(cfg.CrystalFile)
	if err != nil {
		return fmt.Errorf("box bounds: %w", err)
	}
	lc, err := hessian.LatticeConstant(bounds.Extents(), cfg.Rep)
	if err != nil {
		return fmt.Errorf("lattice constant: %w", err)
	}

	cond, err := hessian.MitigatePeriodicEffect(h, crystal, cfg.NatmPerUnitCell, cfg.Rep, lc)
	if err != nil {
		return fmt.Errorf("mitigate periodic effect: %w", err)
	}

	if cfg.HessianHeatmap != "" {
		log.Printf("Rendering conditioned Hessian to `%s`\n", cfg.HessianHeatmap)
		if err := heatmap.Render(cond.Hessian, cfg.HessianHeatmap,
			"conditioned hessian", "dof", "dof", heatmap.DefaultStyle()); err != nil {
			return fmt.Errorf("heatmap: %w", err)
		}
	}

	// Edge removal consumed one replica per lead along z.
	repD := [3]int{cfg.Rep[0], cfg.Rep[1], cfg.Rep[2] - 1}

	log.Println("Decomposing lead blocks")
	decompose := func(idx [3]int) (*blocks.BlockSet, error) {
		return blocks.Decompose(cond.Hessian, idx, cfg.BlockSize, cfg.NatmPerUnitCell, repD)
	}
	leftBulk, err := decompose(cfg.Left.BulkIndex)
	if err != nil {
		return fmt.Errorf("left bulk: %w", err)
	}
	leftSurf, err := decompose(cfg.Left.SurfaceIndex)
	if err != nil {
		return fmt.Errorf("left surface: %w", err)
	}
	rightBulk, err := decompose(cfg.Right.BulkIndex)
	if err != nil {
		return fmt.Errorf("right bulk: %w", err)
	}
	rightSurf, err := decompose(cfg.Right.SurfaceIndex)
	if err != nil {
		return fmt.Errorf("right surface: %w", err)
	}

	periodicity := cfg.PeriodicityLength
	if periodicity == 0 {
		periodicity = cond.LatticeConstant[0]
	}

	log.Println("Building k-resolved dynamical matrices")
	grid, err := fourier.Wavevectors(periodicity, cfg.NumKpoints)
	if err != nil {
		return fmt.Errorf("wavevectors: %w", err)
	}

	fopts := fourier.DefaultOptions()
	if cfg.PhaseSign < 0 {
		fopts.Sign = fourier.PhaseMinus
	}
	transform := func(bs *blocks.BlockSet) ([]fourier.Block, error) {
		return fourier.Transform(bs, grid, periodicity, fopts)
	}
	left := green.Lead{}
	right := green.Lead{}
	if left.Bulk, err = transform(leftBulk); err != nil {
		return fmt.Errorf("left bulk transform: %w", err)
	}
	if left.Surface, err = transform(leftSurf); err != nil {
		return fmt.Errorf("left surface transform: %w", err)
	}
	if right.Bulk, err = transform(rightBulk); err != nil {
		return fmt.Errorf("right bulk transform: %w", err)
	}
	if right.Surface, err = transform(rightSurf); err != nil {
		return fmt.Errorf("right surface transform: %w", err)
	}

	log.Printf("Sweeping %d frequencies × %d wavevectors\n", cfg.OmegaNum, len(grid))
	gopts := green.DefaultOptions()
	gopts.Delta = cfg.Delta
	gopts.Workers = cfg.Workers
	gopts.Verbose = cfg.Verbose

	results, err := green.Sweep(left, right, cfg.OmegaMin, cfg.OmegaMax, cfg.OmegaNum, gopts)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	var failed int
	for _, res := range results {
		for _, pt := range res.Failed() {
			failed++
			log.Printf("point failed: %v\n", pt.Err)
		}
	}
	log.Printf("Computed %d frequency samples, %d failed points\n", len(results), failed)

	return nil
}
