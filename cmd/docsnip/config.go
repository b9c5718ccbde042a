package main

import "github.com/fwojciec/docsnip/yaml"

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	data, err := yaml.EncodeConfig(deps.Config)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
