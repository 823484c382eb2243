package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/djcass44/ipm/cmd/cache"
	ipmv1 "github.com/djcass44/ipm/pkg/api/v1"
	"github.com/djcass44/ipm/pkg/downloader"
	"github.com/djcass44/ipm/pkg/packages"
	"github.com/djcass44/ipm/pkg/packages/dpkg"
	"github.com/djcass44/ipm/pkg/packages/ipak"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var pkgCmd = &cobra.Command{
	Use:   "pkg",
	Short: "Manage packages",
}

var pkgInspectCmd = &cobra.Command{
	Use:   "inspect [file or url]",
	Short: "print the canonical form of package metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  pkgInspect,
}

const (
	flagType     = "type"
	flagCacheDir = "cache-dir"
)

var errUnsupportedType = errors.New("unsupported package type")

// typeDeb reads the control file out of a binary package archive.
const typeDeb ipmv1.PackageType = "deb"

func init() {
	pkgInspectCmd.Flags().StringP(flagType, "t", string(ipmv1.PackageIpak), "metadata format (ipak, dpkg or deb)")
	pkgInspectCmd.Flags().String(flagCacheDir, "", "cache directory (defaults to user cache dir)")

	pkgCmd.AddCommand(pkgInspectCmd)
}

func pkgInspect(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	pkgType, _ := cmd.Flags().GetString(flagType)
	cacheDir, _ := cmd.Flags().GetString(flagCacheDir)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cacheDir == "" {
		cacheDir = cfg.Spec.CacheDir
	}

	dl, err := downloader.NewDownloader(cache.Dir(cacheDir))
	if err != nil {
		return err
	}
	path, err := dl.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	log.V(1).Info("reading package metadata", "path", path, "type", pkgType)
	infos, err := readPackages(cmd.Context(), ipmv1.PackageType(pkgType), f)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "\t")
	return enc.Encode(infos)
}

func readPackages(ctx context.Context, pkgType ipmv1.PackageType, r io.Reader) ([]packages.PackageInfo, error) {
	switch pkgType {
	case ipmv1.PackageIpak:
		data, err := ipak.Read(ctx, r)
		if err != nil {
			return nil, err
		}
		return []packages.PackageInfo{ipak.Adapt(*data)}, nil
	case ipmv1.PackageDpkg, typeDeb:
		read := dpkg.Read
		if pkgType == typeDeb {
			read = dpkg.ReadArchive
		}
		paragraphs, err := read(ctx, r)
		if err != nil {
			return nil, err
		}
		out := make([]packages.PackageInfo, 0, len(paragraphs))
		for _, p := range paragraphs {
			info, err := dpkg.Adapt(p)
			if err != nil {
				return nil, err
			}
			out = append(out, info)
		}
		return out, nil
	case ipmv1.PackageFlatpak, ipmv1.PackageSnap:
		return nil, fmt.Errorf("%w: %s metadata can't be read yet", errUnsupportedType, pkgType)
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedType, pkgType)
	}
}
