package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmehta/pharmaquiz/internal/archive"
	"github.com/nmehta/pharmaquiz/internal/difficulty"
	"github.com/nmehta/pharmaquiz/internal/docctx"
	"github.com/nmehta/pharmaquiz/internal/llm"
	"github.com/nmehta/pharmaquiz/internal/questiongen"
	"github.com/nmehta/pharmaquiz/internal/quiz"
	"github.com/nmehta/pharmaquiz/internal/scoring"
	"github.com/nmehta/pharmaquiz/internal/tui"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Generate a quiz and take it interactively",
	RunE:  runTake,
}

func init() {
	takeCmd.Flags().String("project", "", "Project name")
	takeCmd.Flags().String("client", "", "Client name")
	takeCmd.Flags().String("therapy-area", "", "Primary therapy area (prompted interactively if omitted)")
	takeCmd.Flags().String("secondary-therapy-area", "", "Secondary therapy area")
	takeCmd.Flags().String("indication", "", "Indication")
	takeCmd.Flags().String("project-type", string(quiz.ProjectATU), "Project type (ATU, ATU PCA, HCP PT, PET, Qual, RT, Digital Tracker, Demand Estimation, Segmentation)")
	takeCmd.Flags().String("scenario", string(quiz.ScenarioNewClientBaseline), "Client scenario (new_client_baseline, existing_client_followup, existing_client_new_baseline)")
	takeCmd.Flags().Int("level", 1, "Experience level (1-7)")
	takeCmd.Flags().StringSlice("products", nil, "Product names in scope")
	takeCmd.Flags().Int("questions", quiz.DefaultQuestionCount, "Number of questions")
	takeCmd.Flags().StringSlice("context", nil, "Supporting document files to ground questions in")
	takeCmd.Flags().String("export", "", "Write the result JSON to this file")
	takeCmd.Flags().Bool("no-archive", false, "Do not store the result in the local database")
}

func runTake(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)
	setupLogging(v)

	params, err := parametersFromFlags(v)
	if err != nil {
		return err
	}

	count := v.GetInt("questions")
	if count < quiz.MinQuestionCount || count > quiz.MaxQuestionCount {
		return fmt.Errorf("question count must be between %d and %d", quiz.MinQuestionCount, quiz.MaxQuestionCount)
	}
	buckets, err := difficulty.Distribute(params.ExperienceLevel, count)
	if err != nil {
		return err
	}

	llmCfg := llm.ConfigFromEnv()
	provider, err := llm.NewProvider(cmd.Context(), llmCfg)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	deps := tui.Deps{
		Builder:    questiongen.New(provider, questiongen.DefaultConfig()),
		Params:     params,
		Buckets:    buckets,
		Scoring:    scoring.DefaultConfig(),
		GenTimeout: llmCfg.Timeout,
	}

	if !v.GetBool("no-archive") {
		dbPath, err := resolveDBPath(v)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		store, err := archive.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open results database: %w", err)
		}
		defer store.Close()
		deps.Archive = store
	}

	result, err := tui.Run(deps)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "quiz aborted before scoring")
		return nil
	}

	if path := v.GetString("export"); path != "" {
		data, err := scoring.Export(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Println("result written to", path)
	}

	fmt.Printf("Score %.1f%%  Grade %s  ", result.Score, result.Grade)
	if result.Passed {
		fmt.Println("PASSED")
	} else {
		fmt.Println("NOT PASSED")
	}
	return nil
}

// parametersFromFlags assembles and validates quiz parameters,
// including extracted document context.
func parametersFromFlags(v *viper.Viper) (quiz.Parameters, error) {
	params := quiz.Parameters{
		ProjectName:          v.GetString("project"),
		ClientName:           v.GetString("client"),
		TherapyArea:          v.GetString("therapy-area"),
		SecondaryTherapyArea: v.GetString("secondary-therapy-area"),
		Indication:           v.GetString("indication"),
		ProjectType:          quiz.ProjectType(v.GetString("project-type")),
		ClientScenario:       quiz.ClientScenario(v.GetString("scenario")),
		ExperienceLevel:      v.GetInt("level"),
		ProductNames:         v.GetStringSlice("products"),
	}

	if files := v.GetStringSlice("context"); len(files) > 0 {
		text, err := docctx.NewProcessor().Combine(files)
		if err != nil {
			return quiz.Parameters{}, err
		}
		params.ContextText = text
	}

	// With no therapy area on the command line the TUI opens its setup
	// form and validates after entry.
	if params.TherapyArea == "" {
		return params, nil
	}
	if err := params.Validate(); err != nil {
		return quiz.Parameters{}, err
	}
	return params, nil
}
