package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmehta/pharmaquiz/internal/difficulty"
	"github.com/nmehta/pharmaquiz/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the difficulty mix for an experience level without generating",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := viperForCmd(cmd)

		level := v.GetInt("level")
		count := v.GetInt("questions")
		buckets, err := difficulty.Distribute(level, count)
		if err != nil {
			return err
		}

		fmt.Printf("Experience level %d: %s\n\n", level, quiz.ExperienceLevels[level])
		fmt.Printf("%-14s %d\n", "fundamental", buckets.Fundamental)
		fmt.Printf("%-14s %d\n", "intermediate", buckets.Intermediate)
		fmt.Printf("%-14s %d\n", "advanced", buckets.Advanced)
		fmt.Printf("%-14s %d\n", "total", buckets.Total())
		return nil
	},
}

func init() {
	previewCmd.Flags().Int("level", 1, "Experience level (1-7)")
	previewCmd.Flags().Int("questions", quiz.DefaultQuestionCount, "Number of questions")
}
