package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var enhanceType string

//nolint:gochecknoglobals // Cobra boilerplate
var enhanceAge int

//nolint:gochecknoglobals // Cobra boilerplate
var enhanceExperience string

//nolint:gochecknoglobals // Cobra boilerplate
var enhanceEducation string

//nolint:gochecknoglobals // Cobra boilerplate
var enhanceSkills string

//nolint:gochecknoglobals // Cobra boilerplate
var enhanceCmd = &cobra.Command{
	Use:   "enhance <text>",
	Short: "Ask the LLM to rewrite or suggest résumé text",
	Long: `Send one piece of résumé text to the configured provider and print the
replacement it suggests.

Types:
  enhance_experience      rewrite a job description for a 職務経歴書
  suggest_skills          suggest skills for a career
  optimize_education      polish an education entry
  generate_summary        write a 自己PR from experience and skills
  improve_qualifications  suggest qualifications worth earning

Example:
  resume-builder enhance --type enhance_experience --age 32 "法人営業を担当"
  resume-builder enhance --type generate_summary --experience "営業10年" --skills "交渉" "営業"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEnhance,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(enhanceCmd)
	enhanceCmd.Flags().StringVar(&enhanceType, "type", "", "Enhancement type")
	enhanceCmd.Flags().IntVar(&enhanceAge, "age", 0, "Age in years (default 30)")
	enhanceCmd.Flags().StringVar(&enhanceExperience, "experience", "", "Work history for context")
	enhanceCmd.Flags().StringVar(&enhanceEducation, "education", "", "Education for context")
	enhanceCmd.Flags().StringVar(&enhanceSkills, "skills", "", "Skills for context")
	_ = enhanceCmd.MarkFlagRequired("type")
}

func runEnhance(cmd *cobra.Command, args []string) (err error) {
	var kind llm.Kind
	kind, err = llm.ParseKind(enhanceType)
	if err != nil {
		return err
	}

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	err = cfg.ValidateEnhancer()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var enhancer llm.Enhancer
	enhancer, err = llm.NewEnhancer(ctx, cfg.EnhancerOptions())
	if err != nil {
		err = errors.Wrap(err, "failed to create enhancer")
		return err
	}

	req := llm.Request{
		Kind:  kind,
		Input: strings.Join(args, " "),
		Hints: llm.Hints{
			Age:        enhanceAge,
			Experience: enhanceExperience,
			Education:  enhanceEducation,
			Skills:     enhanceSkills,
		},
	}

	var s *spinner
	if !getVerbose() {
		s = newSpinner(os.Stderr, "AIで文章を生成しています...")
		s.start()
	}
	logger.Debug().Str("type", string(kind)).Str("provider", cfg.Provider).Msg("requesting enhancement")

	var enhanced string
	enhanced, err = enhancer.Enhance(ctx, req)
	if s != nil {
		s.stopSpinner()
	}
	if err != nil {
		err = errors.Wrap(err, "enhancement failed")
		return err
	}

	fmt.Println(enhanced)
	return err
}
