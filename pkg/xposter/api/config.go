package api

import (
	"errors"
	"os"

	"github.com/joho/godotenv"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/domain"
)

// LoadConfig layers the parameters: the YAML file at `configPath`, then the .env file at `envFilePath`,
// then XPOST_* environment variables (real environment variables win over the .env file).
// Both files are optional.
func LoadConfig(configPath, envFilePath string) (*common.Config, error) {
	config, err := common.LoadConfigIfExists(configPath)
	if err != nil {
		return nil, err
	}
	if envFilePath != "" {
		err = godotenv.Load(envFilePath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	err = domain.ApplyEnvironment(config)
	if err != nil {
		return nil, err
	}
	return config, nil
}
