package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port     int    `yaml:"port"`
		AdminKey string `yaml:"adminKey"`
	} `yaml:"server"`

	Store struct {
		// Driver: file (default) | mysql | postgres
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"store"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Model struct {
		ModelPath      string `yaml:"modelPath"`
		VectorizerPath string `yaml:"vectorizerPath"`
	} `yaml:"model"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	AI struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`

	Dashboard struct {
		RecentLimit int `yaml:"recentLimit"`
	} `yaml:"dashboard"`
}

// Load baca file config.yaml dan isi defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "file"
	}
	if c.Store.Path == "" {
		c.Store.Path = "scans.json"
	}
	if c.Model.ModelPath == "" {
		c.Model.ModelPath = "model.json"
	}
	if c.Model.VectorizerPath == "" {
		c.Model.VectorizerPath = "vectorizer.json"
	}
	if c.Dashboard.RecentLimit == 0 {
		c.Dashboard.RecentLimit = 5
	}
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// Helper untuk build DSN Postgres (lib/pq)
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// ArchiveEnabled reports whether a MinIO endpoint was configured.
func (c *Config) ArchiveEnabled() bool { return c.Minio.Endpoint != "" }

// AIEnabled reports whether an AI API key was configured.
func (c *Config) AIEnabled() bool { return c.AI.APIKey != "" }
