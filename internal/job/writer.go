package job

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Write writes a job to a YAML file
func Write(j *Job, path string) error {
	data, err := yaml.Marshal(j)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a job from a YAML file
func Read(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var j Job
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, err
	}

	return &j, nil
}
