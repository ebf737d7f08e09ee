package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	clipper "github.com/vattikit/polybool/port"
)

// offsetJob describes one offsetting job read from a YAML file.
type offsetJob struct {
	Delta             float64 `yaml:"delta"`
	JoinType          string  `yaml:"joinType"`
	EndType           string  `yaml:"endType"`
	MiterLimit        float64 `yaml:"miterLimit"`
	ArcTolerance      float64 `yaml:"arcTolerance"`
	PreserveCollinear bool    `yaml:"preserveCollinear"`
	ReverseSolution   bool    `yaml:"reverseSolution"`
	Input             string  `yaml:"input"`
	Output            string  `yaml:"output"`
}

var offsetCmd = &cobra.Command{
	Use:   "offset JOBFILE",
	Short: "run a polygon offset job described in YAML",
	Long: `Grow or shrink the paths in JOBFILE's input file by delta, using
the given join and end types, and write the result as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runOffsetJob,
}

func init() {
	RootCmd.AddCommand(offsetCmd)
}

func runOffsetJob(cmd *cobra.Command, args []string) error {
	var job offsetJob
	if err := unmarshalYAMLFile(args[0], &job); err != nil {
		return fmt.Errorf("load job: %w", err)
	}

	joinType, err := parseJoinType(job.JoinType)
	if err != nil {
		return err
	}
	endType, err := parseEndType(job.EndType)
	if err != nil {
		return err
	}
	input, err := readPaths(job.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := clipper.OffsetOptions{
		MiterLimit:        job.MiterLimit,
		ArcTolerance:      job.ArcTolerance,
		PreserveCollinear: job.PreserveCollinear,
		ReverseSolution:   job.ReverseSolution,
	}
	result, err := clipper.InflatePaths64(input, job.Delta, joinType, endType, opts)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	if job.Output != "" {
		if err := writePaths(job.Output, result); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	fmt.Printf("offset: %d path(s)\n", len(result))
	return nil
}
