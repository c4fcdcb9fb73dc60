// Command blake2-vectors writes the reference test-vector suites consumed by
// this module's extras tests and by external BLAKE2 harnesses.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/gtank/blake2/vectors"
)

func main() {
	app := cli.NewApp()

	app.Name = "blake2-vectors"
	app.Usage = "generate BLAKE2 salt, personalization, and digest-length test vectors"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "blake2s-out",
			Usage: "output path for the BLAKE2s suite",
			Value: "testdata/blake2s-extras.json",
		},
		cli.StringFlag{
			Name:  "blake2b-out",
			Usage: "output path for the BLAKE2b suite",
			Value: "testdata/blake2b-extras.json",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug,info,warning,error",
			Value: "info",
		},
	}

	app.Before = func(c *cli.Context) error {
		lv, err := logrus.ParseLevel(c.String("log-level"))
		if err != nil {
			return err
		}
		logrus.SetLevel(lv)
		return nil
	}

	app.Action = func(c *cli.Context) error {
		var eg errgroup.Group
		eg.Go(func() error {
			return writeSuite(c.String("blake2s-out"), vectors.Blake2sSuite)
		})
		eg.Go(func() error {
			return writeSuite(c.String("blake2b-out"), vectors.Blake2bSuite)
		})
		return eg.Wait()
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "blake2-vectors: %s\n", err)
		os.Exit(1)
	}
}

// writeSuite builds one suite and writes it to path, creating the parent
// directory if needed.
func writeSuite(path string, build func() ([]vectors.Vector, error)) error {
	suite, err := build()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if err := vectors.Write(f, suite); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"vectors": len(suite),
	}).Info("wrote vector suite")

	return nil
}
