package cmd

import (
	"os"

	"github.com/djcass44/ipm/pkg/airutil"
	ipmv1 "github.com/djcass44/ipm/pkg/api/v1"
	"github.com/djcass44/ipm/pkg/repository"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// loadConfig reads the configuration file given by the user. Without
// one, the defaults are used.
func loadConfig(cmd *cobra.Command) (ipmv1.Config, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	if configPath == "" {
		return ipmv1.Config{
			Spec: ipmv1.ConfigSpec{
				Sources: repository.DefaultSources,
			},
		}, nil
	}
	return readConfig(configPath)
}

func readConfig(s string) (ipmv1.Config, error) {
	f, err := os.Open(s)
	if err != nil {
		return ipmv1.Config{}, err
	}
	defer f.Close()

	var config ipmv1.Config
	if err := yaml.NewYAMLOrJSONDecoder(f, 4).Decode(&config); err != nil {
		return ipmv1.Config{}, err
	}
	if len(config.Spec.Sources) == 0 {
		config.Spec.Sources = repository.DefaultSources
	}
	config.Spec.Sources = airutil.ExpandPaths(config.Spec.Sources)
	config.Spec.CacheDir = airutil.ExpandEnv(config.Spec.CacheDir)
	return config, nil
}
