package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/slabkit/slab"
)

var infoFlags = struct {
	slabFlags
	chunks int
}{}

func init() {
	cmd := newInfoCmd()
	f := cmd.Flags()
	f.IntVar(&infoFlags.blockSize, "block", 256, "Block size in bytes")
	f.IntVar(&infoFlags.align, "align", 64, "Block alignment in bytes")
	f.IntVar(&infoFlags.limit, "limit", 1<<16, "Block limit (-1 for unbounded)")
	f.StringVar(&infoFlags.policy, "policy", "pow2", "Growth policy: fixed, pow2 or linear")
	f.IntVar(&infoFlags.base, "base", 64, "First-chunk size in blocks")
	f.IntVar(&infoFlags.step, "step", 64, "Per-chunk increment for the linear policy")
	f.IntVar(&infoFlags.chunks, "chunks", 8, "How many growth steps to project")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the resolved slab configuration and growth plan",
		Long: `The info command validates the given slab parameters and projects the
growth plan: the size of each successive chunk under the chosen policy,
clamped to the limit, without allocating anything.

Example:
  slabctl info --policy pow2 --base 8 --limit 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

// growthStep is one projected chunk acquisition.
type growthStep struct {
	Chunk  int `json:"chunk"`
	Blocks int `json:"blocks"`
	Total  int `json:"total"`
}

type infoResult struct {
	Layout  slab.Layout  `json:"layout"`
	Limit   int          `json:"limit"`
	Policy  string       `json:"policy"`
	Plan    []growthStep `json:"plan"`
	Clamped bool         `json:"limit_reached"`
}

// projectGrowth simulates the growth sequence a slab would perform: each
// chunk sized by the policy, clamped to the limit. It stops after steps
// chunks or when the limit forbids further growth.
func projectGrowth(growth slab.GrowthPolicy, limit, steps int) ([]growthStep, bool) {
	var plan []growthStep
	total := 0
	for chunk := 0; chunk < steps; chunk++ {
		blocks := growth(chunk, total)
		if limit >= 0 && blocks > limit-total {
			blocks = limit - total
		}
		if blocks <= 0 {
			return plan, true
		}
		total += blocks
		plan = append(plan, growthStep{Chunk: chunk + 1, Blocks: blocks, Total: total})
	}
	return plan, false
}

func runInfo() error {
	layout := infoFlags.layout()
	if err := layout.Validate(); err != nil {
		return err
	}
	growth, err := infoFlags.growth()
	if err != nil {
		return err
	}

	result := infoResult{
		Layout: layout,
		Limit:  infoFlags.limit,
		Policy: infoFlags.policy,
	}

	result.Plan, result.Clamped = projectGrowth(growth, infoFlags.limit, infoFlags.chunks)

	if jsonOut {
		return printJSON(result)
	}

	p := message.NewPrinter(language.English)
	printInfo("%s", p.Sprintf("layout %v, limit %d, policy %s\n", layout, result.Limit, result.Policy))
	for _, step := range result.Plan {
		printInfo("%s", p.Sprintf("chunk %d: %d blocks (%d total)\n", step.Chunk, step.Blocks, step.Total))
	}
	if result.Clamped {
		printInfo("further growth fails: limit reached\n")
	}
	return nil
}
