package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phrazzld/pattern-catalog/internal/domain"
	"github.com/phrazzld/pattern-catalog/internal/service"
)

var (
	errContentIssues   = errors.New("content has consistency issues")
	errCategoryMissing = errors.New("category not found")
	errPatternMissing  = errors.New("pattern not found")
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every content file and report problems",
		Long: `Parses every category and pattern file under the content directory.
A file that fails to parse or validate stops the run with its path.
Orphan patterns and duplicate slugs are listed and make the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, _, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			report, err := loader.Validate(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			issues := report.Issues
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}

			fmt.Fprintf(out, "%d categories, %d patterns, %d issues\n",
				report.Categories, report.Patterns, len(issues))

			if len(issues) > 0 {
				return fmt.Errorf("%w: %d found", errContentIssues, len(issues))
			}
			return nil
		},
	}
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in display order with pattern counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCases(cmd)
			if err != nil {
				return err
			}

			categories, err := uc.ListCategories.Execute(cmd.Context())
			if err != nil {
				return err
			}

			return printCategories(cmd.OutOrStdout(), categories)
		},
	}
}

func newCategoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "category <slug>",
		Short: "Show a category and its patterns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.useCases(cmd)
			if err != nil {
				return err
			}

			result, err := uc.GetCategoryWithPatterns.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if result == nil {
				return fmt.Errorf("%w: %s", errCategoryMissing, args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", result.Category.Name(), result.Category.Slug())
			if d := result.Category.Description(); d != "" {
				fmt.Fprintln(out, d)
			}
			fmt.Fprintln(out)
			return printPatterns(out, result.Patterns)
		},
	}
}

func newPatternsCmd(opts *rootOptions) *cobra.Command {
	var tag, query string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List patterns, optionally filtered by tag and search text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCases(cmd)
			if err != nil {
				return err
			}

			filter := &service.FilterPatternsOptions{}
			if cmd.Flags().Changed("tag") {
				filter.Tag = &tag
			}
			if cmd.Flags().Changed("query") {
				filter.Query = &query
			}

			patterns, err := uc.FilterPatterns.Execute(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return printPatterns(cmd.OutOrStdout(), patterns)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "only patterns carrying this tag")
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive search over name and description")

	return cmd
}

func newPatternCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <slug>",
		Short: "Show a single pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := opts.useCases(cmd)
			if err != nil {
				return err
			}

			pattern, err := uc.GetPatternDetail.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if pattern == nil {
				return fmt.Errorf("%w: %s", errPatternMissing, args[0])
			}

			printPattern(cmd.OutOrStdout(), pattern)
			return nil
		},
	}
}

func newTagsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every distinct tag in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCases(cmd)
			if err != nil {
				return err
			}

			tags, err := uc.ListTags.Execute(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range tags {
				fmt.Fprintln(out, t.String())
			}
			return nil
		},
	}
}

func printCategories(w io.Writer, categories []service.CategoryWithPatternCount) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tNAME\tPATTERNS")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Category.Slug(), c.Category.Name(), c.PatternCount)
	}
	return tw.Flush()
}

func printPatterns(w io.Writer, patterns []*domain.Pattern) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tCATEGORY\tTAGS")
	for _, p := range patterns {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Slug(), p.CategorySlug(), joinTags(p.Tags()))
	}
	return tw.Flush()
}

func printPattern(w io.Writer, p *domain.Pattern) {
	fmt.Fprintf(w, "%s (%s)\n", p.Name(), p.Slug())
	fmt.Fprintf(w, "category: %s\n", p.CategorySlug())
	fmt.Fprintf(w, "tags: %s\n", joinTags(p.Tags()))
	if u := p.RepoURL(); u != nil {
		fmt.Fprintf(w, "repo: %s\n", u.String())
	}
	for _, s := range p.Skills() {
		fmt.Fprintf(w, "skill: %s (%s)\n", s.SkillName(), s.InstallCommand())
	}
	for _, t := range p.Tools() {
		fmt.Fprintf(w, "tool: %s %s\n", t.ToolName(), t.ToolURL())
	}
	fmt.Fprintf(w, "\n%s\n", p.Description())
	if sp := p.SamplePrompt(); sp != nil {
		fmt.Fprintf(w, "\nsample prompt:\n%s\n", sp.String())
	}
	if body := p.Body(); body != "" {
		fmt.Fprintf(w, "\n%s\n", strings.TrimRight(body, "\n"))
	}
}

func joinTags(tags []domain.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
