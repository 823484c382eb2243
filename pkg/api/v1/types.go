package v1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

// PackageType is the package format a record was read from.
type PackageType string

const (
	PackageDpkg    PackageType = "dpkg"
	PackageFlatpak PackageType = "flatpak"
	PackageSnap    PackageType = "snap"
	PackageIpak    PackageType = "ipak"
)

type ConfigSpec struct {
	// Sources lists deb822 ".sources" files or directories
	// containing them. Environment variables are expanded.
	Sources []string `json:"sources,omitempty"`
	// CacheDir is where remote package metadata is downloaded to
	CacheDir string `json:"cacheDir,omitempty"`
}

type Config struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ConfigSpec `json:"spec"`
}
