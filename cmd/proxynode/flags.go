package main

import (
	"github.com/urfave/cli"
)

var (
	filePathPlaceholder = "[path]"
	// configurationFile defines a flag for the path to the main toml configuration file
	configurationFile = cli.StringFlag{
		Name: "config",
		Usage: "The `" + filePathPlaceholder + "` for the main configuration file. This TOML file contains " +
			"the proxy contract constants, the gas costs and the query api settings.",
		Value: "./config/config.toml",
	}
	// restApiInterface defines a flag for the interface on which the rest api will try to bind
	restApiInterface = cli.StringFlag{
		Name: "rest-api-interface",
		Usage: "The interface `address and port` to which the REST API will attempt to bind. " +
			"To bind to all available interfaces, set this flag to :8080. Overrides the config file value.",
		Value: "",
	}
	// logLevel defines the logger levels and patterns
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,api:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the api package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + "INFO",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		configurationFile,
		restApiInterface,
		logLevel,
	}
}
