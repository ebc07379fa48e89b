package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apex "github.com/apex/log"
	apexcli "github.com/apex/log/handlers/cli"
	logging "github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/LaudateCorpus1/licensed/config"
	"github.com/LaudateCorpus1/licensed/files"
	"github.com/LaudateCorpus1/licensed/licenses"
	"github.com/LaudateCorpus1/licensed/log"
	"github.com/LaudateCorpus1/licensed/match"
)

// main.{version,commit} are set by linker flags in goreleaser
var version string
var commit string

const (
	pathUsage       = "absolute path to the dependency checkout"
	searchRootUsage = "upper boundary for license file discovery; defaults to the dependency path"
	nameUsage       = "the dependency name; overridden by manifest metadata"
	revisionUsage   = "the dependency version or revision"
	licenseUsage    = "package-manager-declared license key, if known"
	configUsage     = "path to an evidence-table config file"
	debugUsage      = "print debug information to stderr"
)

func main() {
	app := cli.NewApp()
	app.Name = "licensing"
	app.Usage = "detect the license and legal notices of a dependency checkout"
	app.Version = version + " (revision " + commit + ")"

	app.Action = detectCmd
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "p, path", Usage: pathUsage},
		cli.StringFlag{Name: "s, search-root", Usage: searchRootUsage},
		cli.StringFlag{Name: "n, name", Usage: nameUsage},
		cli.StringFlag{Name: "r, revision", Usage: revisionUsage},
		cli.StringFlag{Name: "l, license", Usage: licenseUsage},
		cli.StringFlag{Name: "c, config", Usage: configUsage},
		cli.BoolFlag{Name: "debug", Usage: debugUsage},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("Could not detect licenses: %s", err.Error())
	}
}

func detectCmd(ctx *cli.Context) error {
	setupLogging(ctx.Bool("debug"))

	tables := config.Default()
	if filename := ctx.String("config"); filename != "" {
		f, err := config.ReadFile(filename)
		if err != nil {
			return err
		}
		tables = f
	}

	metadata := make(map[string]interface{})
	if key := ctx.String("license"); key != "" {
		metadata["license"] = key
	}

	dep, err := licenses.NewDependency(licenses.Config{
		Name:       ctx.String("name"),
		Version:    ctx.String("revision"),
		Path:       ctx.String("path"),
		SearchRoot: ctx.String("search-root"),
		Metadata:   metadata,
	}, match.Scanner{}, tables)
	if err != nil {
		return err
	}

	apex.WithField("path", dep.Path).Debug("detecting dependency licenses")
	if ok, _ := files.ExistsFolder(dep.Path); !ok {
		apex.WithField("path", dep.Path).Warn("dependency path is not a directory")
	}
	record := dep.Record()
	if record == nil {
		return errors.Errorf("dependency could not be inspected: %s", strings.Join(dep.Errors(), "; "))
	}

	out, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "could not marshal detection record")
	}
	fmt.Println(string(out))
	return nil
}

func setupLogging(debug bool) {
	apex.SetHandler(apexcli.Default)
	apex.SetLevel(apex.InfoLevel)

	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), log.Format)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.WARNING, "")
	if debug {
		apex.SetLevel(apex.DebugLevel)
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}
