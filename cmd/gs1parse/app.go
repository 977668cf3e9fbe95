/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "GS1PARSE"

// configuration keys; each is also a persistent flag
const (
	keyConfig         = "config"
	keyFormat         = "format"
	keyGS             = "gs"
	keyLogLevel       = "log-level"
	keyStrict         = "strict"
	keyStripSymbology = "strip-symbology"
	keyCompanyPrefix  = "company-prefix-length"
)

type app struct {
	v   *viper.Viper
	log *logrus.Logger

	in  io.Reader
	out io.Writer

	// envFiles are loaded into the environment before configuration is read;
	// if empty, ".env" in the working directory is used when it exists.
	envFiles []string
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)

	return &app{
		v:   viper.New(),
		log: logger,
		in:  in,
		out: out,
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gs1parse",
		Short: "Decode GS1 element strings",
		Long: `gs1parse decodes GS1 element strings into their Application Identifiers
and typed data fields.

The FNC1 group separator (ASCII 29) rarely survives a shell, so a textual
stand-in, "<GS>" by default, is replaced by it before parsing.

Configuration sources, in order of precedence:
  1. command line flags
  2. environment variables (GS1PARSE_*), including those set in ./.env
  3. a configuration file: --config, or gs1parse.{yaml,json} in . or ~/.gs1parse`,
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "configuration file")
	flags.StringP(keyFormat, "f", formatText, "output format: text|json|yaml")
	flags.String(keyGS, "<GS>", "text that stands for the group separator")
	flags.String(keyLogLevel, "warn", "log level: debug|info|warn|error")
	flags.Bool(keyStrict, false, "fail if any element string is only partially parsed")
	flags.Bool(keyStripSymbology, true, "remove a leading symbology identifier such as ]C1")
	flags.Int(keyCompanyPrefix, 0, "GS1 Company Prefix length; if set, EPC URIs are printed")

	root.AddCommand(
		a.parseCommand(),
		a.checkCommand(),
		a.gtinCommand(),
		a.aiCommand(),
	)
	return root
}

// configure binds flags, environment and configuration file, then applies
// the log level.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(a.envFiles...); err != nil {
		if len(a.envFiles) != 0 || !os.IsNotExist(errors.Cause(err)) {
			return errors.Wrap(err, "failed to load environment file")
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}

	if err := a.readConfigFile(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	a.log.SetLevel(level)

	switch f := a.v.GetString(keyFormat); f {
	case formatText, formatJSON, formatYAML:
	default:
		return errors.Errorf("unknown output format %q", f)
	}

	if n := a.v.GetInt(keyCompanyPrefix); n < 0 {
		return errors.Errorf("company prefix length must not be negative, but is %d", n)
	}
	return nil
}

// readConfigFile reads an explicitly named configuration file, which must
// exist, or else the first gs1parse file found on the search path, if any.
func (a *app) readConfigFile() error {
	if name := a.v.GetString(keyConfig); name != "" {
		a.v.SetConfigFile(name)
		return errors.Wrapf(a.v.ReadInConfig(), "failed to read config file %s", name)
	}

	a.v.SetConfigName("gs1parse")
	a.v.AddConfigPath(".")
	a.v.AddConfigPath("$HOME/.gs1parse")
	err := a.v.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config file")
	}
	a.log.WithField("file", a.v.ConfigFileUsed()).Debug("loaded configuration")
	return nil
}
