package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Hedera   HederaConfig   `mapstructure:"hedera"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig configures the optional mirror-balance cache.
// Disabled by default; the service works without Redis.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// HederaConfig holds ledger network credentials and operation parameters.
// The operator pair signs general transactions; the token pair is a
// deliberately separate identity used only for token creation.
type HederaConfig struct {
	OperatorAccountID string `mapstructure:"operator_account_id"`
	OperatorMnemonic  string `mapstructure:"operator_mnemonic"`
	SeedPhrase        string `mapstructure:"seed_phrase"`
	TokenAccountID    string `mapstructure:"token_account_id"`
	TokenPrivateKey   string `mapstructure:"token_private_key"`
	RPCURL            string `mapstructure:"rpc_url"` // reserved for the smart-contract path

	MirrorBaseURL   string `mapstructure:"mirror_base_url"`
	ExplorerBaseURL string `mapstructure:"explorer_base_url"`

	InitialBalanceTinybar int64         `mapstructure:"initial_balance_tinybar"`
	TransferAmountTinybar int64         `mapstructure:"transfer_amount_tinybar"`
	MaxTransactionFee     int64         `mapstructure:"max_transaction_fee"` // whole HBAR
	MaxQueryPayment       int64         `mapstructure:"max_query_payment"`   // whole HBAR
	TokenPropagationDelay time.Duration `mapstructure:"token_propagation_delay"`
}

// HasOperator reports whether the general operator identity is configured.
func (h HederaConfig) HasOperator() bool {
	return h.OperatorAccountID != "" && h.OperatorMnemonic != ""
}

// HasTokenOperator reports whether the token-creation identity is configured.
func (h HederaConfig) HasTokenOperator() bool {
	return h.TokenAccountID != "" && h.TokenPrivateKey != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: HEDERA_.
// Nested keys use underscore: HEDERA_DATABASE_HOST, HEDERA_SERVER_PORT, etc.
//
// The ledger credentials additionally bind to the bare variable names the
// service has always been deployed with: MY_ACCOUNT_ID, MY_MNEMONIC,
// SEED_PHRASE, ACCOUNT_ID, ACCOUNT_PRIVATE_KEY, RPC_URL.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "hedera")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("hedera.operator_account_id", "")
	v.SetDefault("hedera.operator_mnemonic", "")
	v.SetDefault("hedera.seed_phrase", "")
	v.SetDefault("hedera.token_account_id", "")
	v.SetDefault("hedera.token_private_key", "")
	v.SetDefault("hedera.rpc_url", "")
	v.SetDefault("hedera.mirror_base_url", "https://testnet.mirrornode.hedera.com")
	v.SetDefault("hedera.explorer_base_url", "https://hashscan.io/testnet")
	v.SetDefault("hedera.initial_balance_tinybar", 20000)
	v.SetDefault("hedera.transfer_amount_tinybar", 10000)
	v.SetDefault("hedera.max_transaction_fee", 100)
	v.SetDefault("hedera.max_query_payment", 50)
	v.SetDefault("hedera.token_propagation_delay", "3s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: HEDERA_DATABASE_HOST -> database.host
	v.SetEnvPrefix("HEDERA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy credential variable names, kept for deployment compatibility.
	_ = v.BindEnv("hedera.operator_account_id", "HEDERA_HEDERA_OPERATOR_ACCOUNT_ID", "MY_ACCOUNT_ID")
	_ = v.BindEnv("hedera.operator_mnemonic", "HEDERA_HEDERA_OPERATOR_MNEMONIC", "MY_MNEMONIC")
	_ = v.BindEnv("hedera.seed_phrase", "HEDERA_HEDERA_SEED_PHRASE", "SEED_PHRASE")
	_ = v.BindEnv("hedera.token_account_id", "HEDERA_HEDERA_TOKEN_ACCOUNT_ID", "ACCOUNT_ID")
	_ = v.BindEnv("hedera.token_private_key", "HEDERA_HEDERA_TOKEN_PRIVATE_KEY", "ACCOUNT_PRIVATE_KEY")
	_ = v.BindEnv("hedera.rpc_url", "HEDERA_HEDERA_RPC_URL", "RPC_URL")

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
