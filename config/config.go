// Package config loads engine configuration from a YAML file with
// FREYR_-prefixed environment overrides. Clearing parameters are read
// once at boot and never change while the process runs.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		GRPCAddr string `mapstructure:"grpc_addr"`
	} `mapstructure:"server"`

	Kafka struct {
		Brokers        []string `mapstructure:"brokers"`
		OrdersTopic    string   `mapstructure:"orders_topic"`
		BooksTopic     string   `mapstructure:"books_topic"`
		SummariesTopic string   `mapstructure:"summaries_topic"`
		Group          string   `mapstructure:"group"`
	} `mapstructure:"kafka"`

	NATS struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"nats"`

	Dirs struct {
		WAL    string `mapstructure:"wal"`
		Ledger string `mapstructure:"ledger"`
		Outbox string `mapstructure:"outbox"`
	} `mapstructure:"dirs"`

	Clearing struct {
		// DefaultMargin applies when one side of the final crossing
		// pair had no limit price.
		DefaultMargin float64 `mapstructure:"default_margin"`
		// DefaultPrice applies when neither side had one.
		DefaultPrice float64 `mapstructure:"default_price"`
		// SurplusRatio is the seller's share of the bid/ask gap.
		SurplusRatio  float64       `mapstructure:"surplus_ratio"`
		CycleInterval time.Duration `mapstructure:"cycle_interval"`
	} `mapstructure:"clearing"`

	Periods struct {
		First     int64 `mapstructure:"first"`
		OpenCount int   `mapstructure:"open_count"`
	} `mapstructure:"periods"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("FREYR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.grpc_addr", ":50051")
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.orders_topic", "freyr.orders")
	v.SetDefault("kafka.books_topic", "freyr.orderbooks")
	v.SetDefault("kafka.summaries_topic", "freyr.summaries")
	v.SetDefault("kafka.group", "freyr-engine")
	v.SetDefault("dirs.wal", "./data/wal")
	v.SetDefault("dirs.ledger", "./data/ledger")
	v.SetDefault("dirs.outbox", "./data/outbox")
	v.SetDefault("clearing.default_margin", 0.05)
	v.SetDefault("clearing.default_price", 40.0)
	v.SetDefault("clearing.surplus_ratio", 0.5)
	v.SetDefault("clearing.cycle_interval", time.Minute)
	v.SetDefault("periods.first", 1)
	v.SetDefault("periods.open_count", 24)

	if err := v.ReadInConfig(); err != nil {
		// Missing file is fine: defaults plus env cover a dev run.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
