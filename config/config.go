package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Service is the loadable configuration of one consumed HTTP API. Zero
// timeouts and a nil MaxRetries select the library defaults.
type Service struct {
	Name           string            `mapstructure:"service_name" envconfig:"SERVICE_NAME"`
	RootURL        string            `mapstructure:"service_root" envconfig:"SERVICE_ROOT"`
	ConnectTimeout time.Duration     `mapstructure:"connect_timeout" envconfig:"CONNECT_TIMEOUT"`
	ReadTimeout    time.Duration     `mapstructure:"read_timeout" envconfig:"READ_TIMEOUT"`
	MaxRetries     *int              `mapstructure:"max_retries" envconfig:"MAX_RETRIES"`
	DefaultHeaders map[string]string `mapstructure:"-" envconfig:"DEFAULT_HEADERS"`
	// HeaderList carries headers in properties files as "Key:Value,Key:Value";
	// see Headers.
	HeaderList string `mapstructure:"default_headers" ignored:"true"`
}

// Headers merges DefaultHeaders with the parsed HeaderList.
func (s Service) Headers() map[string]string {
	if s.HeaderList == "" {
		return s.DefaultHeaders
	}

	headers := make(map[string]string)
	for key, value := range s.DefaultHeaders {
		headers[key] = value
	}
	for _, pair := range strings.Split(s.HeaderList, ",") {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return headers
}

func New(path string, object interface{}) error {
	// - check file does exists

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.Wrapf(err, "config file %s does not exists!", path)
	}

	dir := getDirectory(path)
	file, err := getFile(path)

	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigName(file)
	v.AddConfigPath(dir)
	v.SetConfigType("properties")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read %s file", path)
	}

	if err := v.Unmarshal(&object); err != nil {
		return errors.Wrap(err, "failed to unmarshal config to object")
	}

	return nil
}

func NewFromEnv(object interface{}) error {
	filename := os.Getenv("CONFIG_FILE")

	if filename == "" {
		filename = ".env"
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		if err := envconfig.Process("", object); err != nil {
			return errors.Wrap(err, "failed to read from env variable")
		}
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return errors.Wrap(err, "failed to read from .env file")
	}

	if err := envconfig.Process("", object); err != nil {
		return errors.Wrap(err, "failed to read from env variable")
	}

	return nil
}

func getDirectory(path string) string {
	splits := strings.Split(path, "/")
	return strings.Join(splits[:len(splits)-1], "/")
}

func getFile(path string) (string, error) {
	splits := strings.Split(path, "/")
	last := splits[len(splits)-1]

	files := strings.Split(last, ".")

	if len(files) != 2 {
		return "", errors.New(fmt.Sprintf("invalid config file %v", files))
	}

	return files[0], nil
}
