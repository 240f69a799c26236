// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/db"
	"github.com/thatcatcamp/huekit/internal/designer"
	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/projects"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

var (
	projectFlags       themeFlags
	projectDescription string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage saved projects",
	Long:  "Create, list, apply and export named theme projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}
		if projectFlags.primary == "" {
			fail(fmt.Errorf("--primary flag is required"))
		}

		r, err := projectFlags.resolve(cmd)
		if err != nil {
			fail(err)
		}
		in := designer.Inputs{
			Primary:            projectFlags.primary,
			Secondary:          projectFlags.secondary,
			Harmony:            r.harmony,
			BackgroundStrategy: r.opts.BackgroundStrategy,
			Radius:             r.radius,
		}

		project, err := projects.Create(db.GetDB(), args[0], projectDescription, in)
		if err != nil {
			fail(fmt.Errorf("creating project: %w", err))
		}

		fmt.Printf("Project created: %s (primary %s, %s)\n", project.Name, project.PrimaryColor, project.Harmony)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}

		list, err := projects.List(db.GetDB())
		if err != nil {
			fail(err)
		}
		if len(list) == 0 {
			fmt.Println("No projects found")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRIMARY\tSECONDARY\tHARMONY\tBACKGROUND\tAPPLIED")
		for _, p := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.Name, p.PrimaryColor, orDash(p.SecondaryColor), p.Harmony, p.BackgroundStrategy, appliedAt(p.AppliedAt))
		}
		w.Flush()
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a project and its history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}

		project, err := projects.Get(db.GetDB(), args[0])
		if err != nil {
			fail(err)
		}
		history, err := projects.History(db.GetDB(), args[0])
		if err != nil {
			fail(err)
		}

		fmt.Printf("Name:        %s\n", project.Name)
		if project.Description != "" {
			fmt.Printf("Description: %s\n", project.Description)
		}
		fmt.Printf("Primary:     %s\n", project.PrimaryColor)
		fmt.Printf("Secondary:   %s\n", orDash(project.SecondaryColor))
		fmt.Printf("Harmony:     %s\n", project.Harmony)
		fmt.Printf("Background:  %s\n", project.BackgroundStrategy)
		fmt.Printf("Radius:      %grem\n", project.Radius)
		fmt.Printf("Applied:     %s\n", appliedAt(project.AppliedAt))

		if len(history) > 0 {
			fmt.Println("\nHistory:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, rev := range history {
				fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
					rev.CreatedAt.Format(time.DateTime), rev.PrimaryColor, orDash(rev.SecondaryColor), rev.Harmony)
			}
			w.Flush()
		}
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}

		if err := projects.Delete(db.GetDB(), args[0]); err != nil {
			fail(err)
		}
		fmt.Printf("Project deleted: %s\n", args[0])
	},
}

var projectApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Preview and apply new inputs to a project",
	Long: `Apply changes the inputs given as flags, keeps the rest, previews the
resulting theme and stores the inputs as a new revision.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}

		project, err := projects.Get(db.GetDB(), args[0])
		if err != nil {
			fail(err)
		}
		r, err := projectFlags.resolve(cmd)
		if err != nil {
			fail(err)
		}

		current := projects.Inputs(project)
		next := current
		flags := cmd.Flags()
		if flags.Changed("primary") {
			next.Primary = projectFlags.primary
		}
		if flags.Changed("secondary") {
			next.Secondary = projectFlags.secondary
		}
		if flags.Changed("harmony") {
			next.Harmony = r.harmony
		}
		if flags.Changed("background") {
			next.BackgroundStrategy = r.opts.BackgroundStrategy
		}
		if flags.Changed("radius") {
			next.Radius = r.radius
		}

		sess := designer.NewSession(nil, r.opts)
		sess.Restore(current)
		theme, err := sess.Preview(next)
		if err != nil {
			fail(err)
		}
		if failing := themes.Failing(theme.ContrastWarnings); len(failing) > 0 {
			fmt.Printf("Warning: %d pair(s) below AA\n", len(failing))
		}

		if _, err := sess.Apply(func(in designer.Inputs) error {
			_, err := projects.Apply(db.GetDB(), project.Name, in)
			return err
		}); err != nil {
			fail(err)
		}
		applied, _ := sess.Applied()
		fmt.Printf("Applied %s: %s\n", project.Name, describeInputs(applied))
	},
}

var projectCSSCmd = &cobra.Command{
	Use:   "css <name>",
	Short: "Print a project's stylesheet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initDB(); err != nil {
			fail(err)
		}

		project, err := projects.Get(db.GetDB(), args[0])
		if err != nil {
			fail(err)
		}
		r, err := projectFlags.resolve(cmd)
		if err != nil {
			fail(err)
		}

		in := projects.Inputs(project)
		theme, err := themes.Generate(in.Request(r.opts))
		if err != nil {
			fail(err)
		}
		fmt.Print(themes.SerializeCSS(theme.Tokens, in.Radius).String())
	},
}

func describeInputs(in designer.Inputs) string {
	h := in.Harmony
	if h == "" {
		h = harmony.Default
	}
	bs := in.BackgroundStrategy
	if bs == "" {
		bs = tokens.Neutral
	}
	colors := "primary " + in.Primary
	if in.Secondary != "" {
		colors += ", secondary " + in.Secondary
	}
	return fmt.Sprintf("%s, %s, %s background, radius %grem", colors, h, bs, in.Radius)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func appliedAt(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(time.DateTime)
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectDescription, "description", "", "project description")
	projectFlags.register(projectCreateCmd.Flags())

	projectFlags.register(projectApplyCmd.Flags())

	projectCSSCmd.Flags().StringVar(&projectFlags.gamut, "gamut", "", "gamut ceiling: srgb, p3 or rec2020")
	projectCSSCmd.Flags().StringVar(&projectFlags.model, "model", "", "contrast model: oklch or wcag")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectApplyCmd)
	projectCmd.AddCommand(projectCSSCmd)
	rootCmd.AddCommand(projectCmd)
}
