package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultDotEnv = ".env"

// LoadDotEnv copies variables from dotenv files into the process environment
// before the Load* functions read it. Variables already set win. With no
// files, ./.env is loaded when present; named files must exist.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		err := godotenv.Load(defaultDotEnv)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(files...)
}
