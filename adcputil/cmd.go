/*
Copyright © 2026 the map data viewer authors.
This file is part of the map data viewer.

The map data viewer is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

The map data viewer is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the map data viewer.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package adcputil holds the adcp command-line interface.
package adcputil

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	adcp "github.com/jess-barreleye/map-data-viewer"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage string
	defaultVal  interface{}
	flagsets    []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetOutput(os.Stderr) // Standard output carries only the JSON document.
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

func init() {
	// Options are the configuration options available to the adcp command.
	options = []struct {
		name, usage string
		defaultVal  interface{}
		flagsets    []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "time-start",
			usage: `
              time-start is the beginning of the requested time window as a
              Unix timestamp in milliseconds.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "time-end",
			usage: `
              time-end is the end of the requested time window as a Unix
              timestamp in milliseconds. No check is made that it follows
              time-start.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "depth-range",
			usage: `
              depth-range is the requested measurement depth band in meters,
              either "<min>-<max>" (e.g. "0-25", "25-50") or "><min>"
              (e.g. ">300") for deeper-than-min with no upper bound.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "instrument",
			usage: `
              instrument is the name of the ADCP instrument to extract data
              for (e.g. WH300, EC150, OS38). It is echoed into the output
              without validation.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "netcdf-path",
			usage: `
              netcdf-path is the path to the NetCDF file holding ADCP
              measurements. If it is empty, synthetic vectors are generated
              instead. The path can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ADCP")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.String(option.name, v, option.usage)
			case bool:
				set.Bool(option.name, v, option.usage)
			case int:
				set.Int(option.name, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	for _, name := range []string{"time-start", "time-end", "depth-range", "instrument"} {
		Root.MarkFlagRequired(name)
	}
}

func init() {
	Root.AddCommand(versionCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("adcp: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "adcp",
	Short: "Extract ADCP current vectors as JSON.",
	Long: `adcp reads Acoustic Doppler Current Profiler (ADCP) measurements for a
time window, depth range, and instrument, and writes them to standard
output as a single JSON document for the map data viewer server. When no
NetCDF file is available the output degrades to synthetic vectors so the
viewer always has something to render; warnings about the degradation go
to standard error only.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag) or by using command-line
arguments.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		return WriteVectors(os.Stdout)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of the adcp tool.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adcp v%s\n", adcp.Version)
	},
	DisableAutoGenTag: true,
}

// WriteVectors performs one extraction as configured in Cfg and writes
// the resulting JSON document to w. Data-source problems degrade to mock
// output; only argument problems return an error.
func WriteVectors(w io.Writer) error {
	timeStart, err := cast.ToInt64E(Cfg.Get("time-start"))
	if err != nil {
		return fmt.Errorf("adcp: reading 'time-start': %v", err)
	}
	timeEnd, err := cast.ToInt64E(Cfg.Get("time-end"))
	if err != nil {
		return fmt.Errorf("adcp: reading 'time-end': %v", err)
	}
	depthRange := Cfg.GetString("depth-range")
	if _, _, err := adcp.ParseDepthRange(depthRange); err != nil {
		return err
	}
	instrument := Cfg.GetString("instrument")

	var src adcp.DataSource
	if path := os.ExpandEnv(Cfg.GetString("netcdf-path")); path == "" {
		logger.Warn("no netcdf file configured; writing mock vectors")
	} else {
		src = &adcp.FileSource{Path: path}
	}

	data := adcp.Vectors(src, logger, timeStart, timeEnd, depthRange, instrument)
	return Emit(w, data)
}
