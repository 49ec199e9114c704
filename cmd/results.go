package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmehta/pharmaquiz/internal/archive"
	"github.com/nmehta/pharmaquiz/internal/scoring"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List archived quiz results",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := viperForCmd(cmd)
		setupLogging(v)

		store, err := openArchive(v)
		if err != nil {
			return err
		}
		defer store.Close()

		list, err := store.ListResults()
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no results stored yet")
			return nil
		}

		fmt.Printf("%-36s  %-24s  %-16s  %6s  %-5s  %s\n",
			"SESSION", "PROJECT", "THERAPY AREA", "SCORE", "GRADE", "COMPLETED")
		for _, r := range list {
			verdict := r.Grade
			if !r.Passed {
				verdict += "*"
			}
			fmt.Printf("%-36s  %-24s  %-16s  %5.1f%%  %-5s  %s\n",
				r.SessionID, truncate(r.ProjectName, 24), truncate(r.TherapyArea, 16),
				r.Score, verdict, r.CompletedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print the full exported result for one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		setupLogging(v)

		store, err := openArchive(v)
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := store.GetResult(args[0])
		if err != nil {
			return err
		}
		data, err := scoring.Export(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	},
}

func init() {
	resultsCmd.AddCommand(resultsShowCmd)
}

func openArchive(v *viper.Viper) (*archive.Store, error) {
	dbPath, err := resolveDBPath(v)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	store, err := archive.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open results database: %w", err)
	}
	return store, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
