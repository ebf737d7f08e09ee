package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	clipper "github.com/vattikit/polybool/port"
)

// runJob describes one boolean-operation job read from a YAML file.
type runJob struct {
	ClipType    string `yaml:"clipType"`
	FillRule    string `yaml:"fillRule"`
	Subject     string `yaml:"subject"`
	SubjectOpen string `yaml:"subjectOpen"`
	Clip        string `yaml:"clip"`
	Output      string `yaml:"output"`
	OutputOpen  string `yaml:"outputOpen"`
}

var runCmd = &cobra.Command{
	Use:   "run JOBFILE",
	Short: "run a boolean clipping job described in YAML",
	Long: `Run a union/intersection/difference/xor job.

JOBFILE is a YAML file naming the clip type, fill rule, and the JSON files
holding the subject, optional open subject, and clip paths. The result is
written to the job's output path(s) as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runRunJob,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runRunJob(cmd *cobra.Command, args []string) error {
	var job runJob
	if err := unmarshalYAMLFile(args[0], &job); err != nil {
		return fmt.Errorf("load job: %w", err)
	}

	clipType, err := parseClipType(job.ClipType)
	if err != nil {
		return err
	}
	fillRule, err := parseFillRule(job.FillRule)
	if err != nil {
		return err
	}

	subjects, err := readPaths(job.Subject)
	if err != nil {
		return fmt.Errorf("read subject: %w", err)
	}
	subjectsOpen, err := readPaths(job.SubjectOpen)
	if err != nil {
		return fmt.Errorf("read subjectOpen: %w", err)
	}
	clips, err := readPaths(job.Clip)
	if err != nil {
		return fmt.Errorf("read clip: %w", err)
	}

	solution, solutionOpen, err := clipper.BooleanOp64(clipType, fillRule, subjects, subjectsOpen, clips)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	if job.Output != "" {
		if err := writePaths(job.Output, solution); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if job.OutputOpen != "" {
		if err := writePaths(job.OutputOpen, solutionOpen); err != nil {
			return fmt.Errorf("write outputOpen: %w", err)
		}
	}

	fmt.Printf("%s: %d closed path(s), %d open path(s)\n", job.ClipType, len(solution), len(solutionOpen))
	return nil
}
