package cmd

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

func fileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no such file %q", path)
		}
		return err
	}
	return nil
}

func unmarshalYAMLFile(path string, out interface{}) error {
	if err := fileExists(path); err != nil {
		return err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}
