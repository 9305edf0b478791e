package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is loaded from config.yaml, then overridden by BIZOPS_* environment
// variables and command line flags.
type Config struct {
	ServerPort    string `yaml:"server_port" conf:"default::8080"`
	DBUsername    string `yaml:"db_username"`
	DBPassword    string `yaml:"db_password"`
	DBHost        string `yaml:"db_host"`
	DBPort        string `yaml:"db_port"`
	DBName        string `yaml:"db_name"`
	DisableTLS    bool   `yaml:"disable_tls" conf:"default:true"`
	RedisHost     string `yaml:"redis_host" conf:"default:localhost:6379"`
	RedisPassword string `yaml:"redis_password"`
	JWTKey        string `yaml:"jwt_key"`
	BaseUrl       string `yaml:"base_url"`
	MediaBasePath string `yaml:"media_base_path" conf:"default:statics"`
}

func NewConfig() (*Config, error) {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	var c Config

	yamlFile, err := os.ReadFile("config.yaml")
	if err == nil {
		if err = yaml.Unmarshal(yamlFile, &c); err != nil {
			return nil, err
		}
	}

	if err := conf.Parse(os.Args[1:], "BIZOPS", &c); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			usage, uErr := conf.Usage("BIZOPS", &c)
			if uErr != nil {
				return nil, uErr
			}
			fmt.Println(usage)
			os.Exit(0)
		}
		return nil, err
	}

	if c.DBUsername == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key configuration")
	}

	return &c, nil
}

func (c *Config) DBUrl() string {
	sslMode := "require"
	if c.DisableTLS {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBName, sslMode)
}
