package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/services"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Fetch every section once and print what the site would show",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			return err
		}
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		db, err := connect(cmd.Context(), config.New())
		if err != nil {
			return err
		}

		site := services.MountSite(cmd.Context(), storesFor(db))
		defer site.Unmount()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		if err := site.WaitSettled(ctx); err != nil {
			color.Yellow("Some sections did not resolve within %s", timeout)
		}

		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(site.Snapshot())
		}
		printSite(cmd.OutOrStdout(), site.Snapshot())
		return nil
	},
}

func init() {
	contentCmd.Flags().Duration("timeout", 15*time.Second, "How long to wait for every section")
	contentCmd.Flags().Bool("json", false, "Print the snapshots as JSON")
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
	loadingColor = color.New(color.FgYellow)
	detailColor  = color.New(color.FgHiBlack)
)

func printSite(w io.Writer, snap services.SiteSnapshot) {
	printSection(w, "Projects", snap.Projects, func(p int) {
		project := snap.Projects.Data[p]
		fmt.Fprintf(w, "  %s\n", project.Title)
		if len(project.TechStack) > 0 {
			detailColor.Fprintf(w, "    %s\n", strings.Join(project.TechStack, ", "))
		}
	})

	printSection(w, "Skills", snap.Skills, nil)
	if !snap.Skills.Loading {
		for _, group := range services.GroupSkills(snap.Skills.Data) {
			fmt.Fprintf(w, "  %s: %s\n", group.Category, strings.Join(group.Items, ", "))
		}
	}

	printSection(w, "Experience", snap.Experience, func(i int) {
		e := snap.Experience.Data[i]
		fmt.Fprintf(w, "  %s at %s ", e.Title, e.Company)
		detailColor.Fprintf(w, "(%s)\n", e.Period)
	})

	printSection(w, "Education", snap.Education, func(i int) {
		e := snap.Education.Data[i]
		fmt.Fprintf(w, "  %s, %s ", e.Degree, e.School)
		detailColor.Fprintf(w, "(%s)\n", e.Period)
	})
}

func printSection[T any](w io.Writer, title string, snap services.Snapshot[T], item func(int)) {
	headingColor.Fprintf(w, "%s\n", title)
	switch {
	case snap.Loading:
		loadingColor.Fprintln(w, "  loading...")
	case snap.Error != nil:
		errorColor.Fprintf(w, "  error: %s\n", *snap.Error)
	case item != nil:
		for i := range snap.Data {
			item(i)
		}
	}
}
