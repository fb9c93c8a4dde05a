// Package config provides a reusable loader for conduit's configuration
// files and environment variables, adapted from the teacher's pkg/config.
//
// Version: v0.1.0
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/synnergylabs/conduit/internal/chainaddr"
	"github.com/synnergylabs/conduit/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config is the unified configuration for a conduit router instance. It
// mirrors the structure of the YAML files Load reads; the repository ships
// no such file, so without one the values from setDefaults apply.
type Config struct {
	Chain struct {
		Cluster string `mapstructure:"cluster" json:"cluster"`
		HTTPURL string `mapstructure:"http_url" json:"http_url"`
		WSURL   string `mapstructure:"ws_url" json:"ws_url"`
	} `mapstructure:"chain" json:"chain"`

	Ephemeral struct {
		HTTPURL string `mapstructure:"http_url" json:"http_url"`
		WSURL   string `mapstructure:"ws_url" json:"ws_url"`
	} `mapstructure:"ephemeral" json:"ephemeral"`

	RPC struct {
		ListenAddr string `mapstructure:"listen_addr" json:"listen_addr"`
	} `mapstructure:"rpc" json:"rpc"`

	PubSub struct {
		ListenAddr string `mapstructure:"listen_addr" json:"listen_addr"`
	} `mapstructure:"pubsub" json:"pubsub"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads cmd/conduitd/config/default.yaml, merges an optional
// environment-specific overlay, and applies CONDUIT_*-prefixed environment
// variable overrides. A .env file in the working directory, if present, is
// loaded into the process environment first.
func Load(env string) (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/conduitd/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, utils.Wrap(err, "load config")
		}
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.SetEnvPrefix("conduit")
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the CONDUIT_ENV environment
// variable to pick an overlay file.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("CONDUIT_ENV", ""))
}

func setDefaults() {
	viper.SetDefault("chain.cluster", "devnet")
	viper.SetDefault("chain.http_url", chainaddr.DevnetCluster.HTTPURL())
	viper.SetDefault("chain.ws_url", chainaddr.DevnetCluster.WSURL())
	viper.SetDefault("ephemeral.http_url", "http://127.0.0.1:8899")
	viper.SetDefault("ephemeral.ws_url", "ws://127.0.0.1:8900")
	viper.SetDefault("rpc.listen_addr", "127.0.0.1:9899")
	viper.SetDefault("pubsub.listen_addr", "127.0.0.1:9900")
	viper.SetDefault("logging.level", "info")
}

// ResolveChainCluster maps Chain.Cluster to an chainaddr.Cluster, falling
// back to the explicit HTTP/WS URLs when the name is "custom" or unknown.
func (c *Config) ResolveChainCluster() chainaddr.Cluster {
	if cluster, ok := chainaddr.ClusterByName(c.Chain.Cluster); ok {
		return cluster
	}
	return chainaddr.CustomCluster(c.Chain.HTTPURL, c.Chain.WSURL)
}
