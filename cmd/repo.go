package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/djcass44/ipm/pkg/airutil"
	"github.com/djcass44/ipm/pkg/keyring"
	"github.com/djcass44/ipm/pkg/repository"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage repositories",
}

var repoListCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "list the repositories declared in deb822 sources files",
	RunE:  repoList,
}

const flagJSON = "json"

func init() {
	repoListCmd.Flags().Bool(flagJSON, false, "print repositories as json")

	repoCmd.AddCommand(repoListCmd)
}

func repoList(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	asJSON, _ := cmd.Flags().GetBool(flagJSON)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	paths := cfg.Spec.Sources
	if len(args) > 0 {
		paths = airutil.ExpandPaths(args)
	}
	log.V(1).Info("listing repositories", "paths", paths)

	repos, err := repository.List(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "\t")
		return enc.Encode(repos)
	}

	if len(repos) == 0 {
		log.Info("no repositories found")
		return nil
	}
	for _, r := range repos {
		if err := printRepository(cmd, cmd.OutOrStdout(), r); err != nil {
			return err
		}
	}
	return nil
}

func printRepository(cmd *cobra.Command, w io.Writer, r repository.Repository) error {
	log := logr.FromContextOrDiscard(cmd.Context()).WithValues("name", r.Name)

	if _, err := fmt.Fprintf(w, "# %s (%s)\n%s", r.Name, r.Kind, r.Apt.String()); err != nil {
		return err
	}
	if r.Apt.SignedBy != nil {
		fingerprints, err := keyring.Fingerprints(r.Apt.SignedBy.Content)
		if err != nil {
			log.V(1).Info("unable to read signing key", "error", err.Error())
		}
		for _, f := range fingerprints {
			if _, err := fmt.Fprintf(w, "# key %s\n", f); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
