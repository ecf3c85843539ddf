package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DocumentsMemory    = "memory"
	DocumentsPostgres  = "postgres"
	DocumentsFirestore = "firestore"

	ObjectsNone  = "none"
	ObjectsLocal = "local"
	ObjectsS3    = "s3"
	ObjectsGCS   = "gcs"
)

type Config struct {
	Port      string    `mapstructure:"port"`
	App       App       `mapstructure:"app"`
	Log       Log       `mapstructure:"log"`
	Documents Documents `mapstructure:"documents"`
	Objects   Objects   `mapstructure:"objects"`
	Firebase  Firebase  `mapstructure:"firebase"`
}

type App struct {
	Name string `mapstructure:"name"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Documents elige dónde viven pets, tasks, health y users.
type Documents struct {
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	Migrate bool   `mapstructure:"migrate"`
}

// Objects elige dónde se suben los avatares.
type Objects struct {
	Driver        string `mapstructure:"driver"`
	Bucket        string `mapstructure:"bucket"`
	Prefix        string `mapstructure:"prefix"`
	Region        string `mapstructure:"region"`
	LocalDir      string `mapstructure:"local_dir"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type Firebase struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// Load arma la config desde defaults, el archivo (si path no está vacío) y
// variables de entorno. documents.dsn → DOCUMENTS_DSN, etc. DB_DSN y PORT
// siguen funcionando.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("documents.dsn", "DOCUMENTS_DSN", "DB_DSN")
	_ = v.BindEnv("port", "PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	cfg.normalize()
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app.name", "petcare-api")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Sin driver explícito: postgres si hay DSN, si no memoria.
	v.SetDefault("documents.driver", "")
	v.SetDefault("documents.dsn", "")
	v.SetDefault("documents.migrate", false)

	v.SetDefault("objects.driver", ObjectsLocal)
	v.SetDefault("objects.bucket", "")
	v.SetDefault("objects.prefix", "")
	v.SetDefault("objects.region", "")
	v.SetDefault("objects.local_dir", "data/media")
	v.SetDefault("objects.public_base_url", "")

	v.SetDefault("firebase.project_id", "")
	v.SetDefault("firebase.credentials_file", "")
}

func (c *Config) normalize() {
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	c.Documents.Driver = strings.ToLower(strings.TrimSpace(c.Documents.Driver))
	c.Documents.DSN = strings.TrimSpace(c.Documents.DSN)
	c.Objects.Driver = strings.ToLower(strings.TrimSpace(c.Objects.Driver))
	c.Objects.Bucket = strings.TrimSpace(c.Objects.Bucket)

	if c.Documents.Driver == "" {
		c.Documents.Driver = DocumentsMemory
		if c.Documents.DSN != "" {
			c.Documents.Driver = DocumentsPostgres
		}
	}
	if c.Objects.Driver == "" {
		c.Objects.Driver = ObjectsNone
	}
	if c.Objects.Driver == ObjectsLocal && strings.TrimSpace(c.Objects.PublicBaseURL) == "" {
		c.Objects.PublicBaseURL = "http://localhost:" + c.Port + "/media"
	}
}

// Addr es la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}

	switch c.Documents.Driver {
	case DocumentsMemory:
	case DocumentsPostgres:
		if c.Documents.DSN == "" {
			return errors.New("documents.driver=postgres requires documents.dsn (or DB_DSN)")
		}
	case DocumentsFirestore:
	default:
		return fmt.Errorf("unknown documents.driver %q", c.Documents.Driver)
	}

	switch c.Objects.Driver {
	case ObjectsNone:
	case ObjectsLocal:
		if strings.TrimSpace(c.Objects.LocalDir) == "" {
			return errors.New("objects.driver=local requires objects.local_dir")
		}
	case ObjectsS3, ObjectsGCS:
		if c.Objects.Bucket == "" {
			return fmt.Errorf("objects.driver=%s requires objects.bucket", c.Objects.Driver)
		}
	default:
		return fmt.Errorf("unknown objects.driver %q", c.Objects.Driver)
	}

	return nil
}

// UsesFirebase indica si hay que inicializar la app de Firebase.
func (c Config) UsesFirebase() bool {
	return c.Documents.Driver == DocumentsFirestore || c.Objects.Driver == ObjectsGCS
}
