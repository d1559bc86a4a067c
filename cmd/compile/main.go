// Command compile builds Totems contracts into deployable NEF and manifest
// files placed next to the contract sources.
//
// Usage:
//
//	compile DIR...
//
// Each DIR must contain Go sources of the contract and its config.yml.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
)

const (
	configName   = "config.yml"
	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("missing contract directories")
	}

	for _, dir := range flag.Args() {
		err := compile(dir)
		if err != nil {
			log.Fatal(fmt.Errorf("compile %s: %w", dir, err))
		}

		log.Printf("contract '%s' is compiled to '%s' and '%s'\n", dir,
			filepath.Join(dir, nefName), filepath.Join(dir, manifestName))
	}
}

func compile(dir string) error {
	conf, err := smartcontract.ParseContractConfig(filepath.Join(dir, configName))
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	o := &compiler.Options{
		Outfile:      filepath.Join(dir, nefName),
		ManifestFile: filepath.Join(dir, manifestName),

		Name:                       conf.Name,
		ContractEvents:             conf.Events,
		ContractSupportedStandards: conf.SupportedStandards,
		SafeMethods:                conf.SafeMethods,
		Permissions:                make([]manifest.Permission, len(conf.Permissions)),
	}
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}

	_, err = compiler.CompileAndSave(dir, o)
	return err
}
